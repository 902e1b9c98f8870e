package repository

import (
	"context"
	"sync"

	"agrogestor/internal/model"

	"github.com/google/uuid"
)

// LoteRepository defines the data access contract for lotes.
type LoteRepository interface {
	Create(ctx context.Context, l *model.Lote) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lote, error)
	List(ctx context.Context) ([]model.Lote, error)
	Update(ctx context.Context, l *model.Lote) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type loteRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]model.Lote
	order []uuid.UUID
}

func NewLoteRepository() LoteRepository {
	return &loteRepo{items: make(map[uuid.UUID]model.Lote)}
}

func (r *loteRepo) Create(_ context.Context, l *model.Lote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.items[l.ID] = *l
	r.order = append(r.order, l.ID)
	return nil
}

func (r *loteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Lote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &l, nil
}

func (r *loteRepo) List(_ context.Context) ([]model.Lote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]model.Lote, 0, len(r.order))
	for _, id := range r.order {
		if l, ok := r.items[id]; ok {
			result = append(result, l)
		}
	}
	return result, nil
}

func (r *loteRepo) Update(_ context.Context, l *model.Lote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[l.ID]; !ok {
		return ErrNotFound
	}
	r.items[l.ID] = *l
	return nil
}

func (r *loteRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
