package repository

import (
	"context"
	"sync"

	"agrogestor/internal/model"

	"github.com/google/uuid"
)

// DietaRepository defines the data access contract for dietas.
type DietaRepository interface {
	Create(ctx context.Context, d *model.Dieta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Dieta, error)
	List(ctx context.Context) ([]model.Dieta, error)
	Update(ctx context.Context, d *model.Dieta) error
	// Delete performs no cascade: lotes keep their id_dieta and project zero
	// cost afterwards.
	Delete(ctx context.Context, id uuid.UUID) error
}

type dietaRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]model.Dieta
	order []uuid.UUID
}

func NewDietaRepository() DietaRepository {
	return &dietaRepo{items: make(map[uuid.UUID]model.Dieta)}
}

func (r *dietaRepo) Create(_ context.Context, d *model.Dieta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.items[d.ID] = cloneDieta(*d)
	r.order = append(r.order, d.ID)
	return nil
}

func (r *dietaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Dieta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	d = cloneDieta(d)
	return &d, nil
}

func (r *dietaRepo) List(_ context.Context) ([]model.Dieta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]model.Dieta, 0, len(r.order))
	for _, id := range r.order {
		if d, ok := r.items[id]; ok {
			result = append(result, cloneDieta(d))
		}
	}
	return result, nil
}

func (r *dietaRepo) Update(_ context.Context, d *model.Dieta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[d.ID]; !ok {
		return ErrNotFound
	}
	r.items[d.ID] = cloneDieta(*d)
	return nil
}

func (r *dietaRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// cloneDieta deep-copies the composition slice so callers can never alias the
// stored lines.
func cloneDieta(d model.Dieta) model.Dieta {
	if d.Ingredientes != nil {
		lines := make([]model.DietaInsumo, len(d.Ingredientes))
		copy(lines, d.Ingredientes)
		d.Ingredientes = lines
	}
	return d
}
