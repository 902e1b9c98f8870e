package repository

import (
	"context"
	"sync"

	"agrogestor/internal/model"

	"github.com/google/uuid"
)

// PesajeRepository stores the weighing history per lote.
type PesajeRepository interface {
	Create(ctx context.Context, p *model.PesajeLote) error
	// ListByLote returns weighings newest first.
	ListByLote(ctx context.Context, idLote uuid.UUID) ([]model.PesajeLote, error)
}

type pesajeRepo struct {
	mu    sync.RWMutex
	items []model.PesajeLote
}

func NewPesajeRepository() PesajeRepository {
	return &pesajeRepo{}
}

func (r *pesajeRepo) Create(_ context.Context, p *model.PesajeLote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.items = append(r.items, *p)
	return nil
}

func (r *pesajeRepo) ListByLote(_ context.Context, idLote uuid.UUID) ([]model.PesajeLote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []model.PesajeLote
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].IDLote == idLote {
			result = append(result, r.items[i])
		}
	}
	return result, nil
}
