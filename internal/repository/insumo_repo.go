package repository

import (
	"context"
	"sync"

	"agrogestor/internal/model"

	"github.com/google/uuid"
)

// InsumoRepository defines the data access contract for insumos.
// Services depend on this interface, never on the concrete implementation.
type InsumoRepository interface {
	Create(ctx context.Context, i *model.Insumo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Insumo, error)
	List(ctx context.Context) ([]model.Insumo, error)
	Update(ctx context.Context, i *model.Insumo) error
	// Delete is destructive and performs no cascade: dietas referencing the
	// insumo keep their lines and resolve to "not found" afterwards.
	Delete(ctx context.Context, id uuid.UUID) error
}

type insumoRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]model.Insumo
	order []uuid.UUID
}

func NewInsumoRepository() InsumoRepository {
	return &insumoRepo{items: make(map[uuid.UUID]model.Insumo)}
}

func (r *insumoRepo) Create(_ context.Context, i *model.Insumo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	r.items[i.ID] = *i
	r.order = append(r.order, i.ID)
	return nil
}

func (r *insumoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Insumo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &i, nil
}

func (r *insumoRepo) List(_ context.Context) ([]model.Insumo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]model.Insumo, 0, len(r.order))
	for _, id := range r.order {
		if i, ok := r.items[id]; ok {
			result = append(result, i)
		}
	}
	return result, nil
}

func (r *insumoRepo) Update(_ context.Context, i *model.Insumo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[i.ID]; !ok {
		return ErrNotFound
	}
	r.items[i.ID] = *i
	return nil
}

func (r *insumoRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
