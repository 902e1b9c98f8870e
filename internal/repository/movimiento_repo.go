package repository

import (
	"context"
	"sync"

	"agrogestor/internal/model"

	"github.com/google/uuid"
)

// MovimientoRepository stores the stock adjustment history per insumo.
type MovimientoRepository interface {
	Create(ctx context.Context, m *model.MovimientoInsumo) error
	// ListByInsumo returns movements newest first.
	ListByInsumo(ctx context.Context, idInsumo uuid.UUID) ([]model.MovimientoInsumo, error)
}

type movimientoRepo struct {
	mu    sync.RWMutex
	items []model.MovimientoInsumo
}

func NewMovimientoRepository() MovimientoRepository {
	return &movimientoRepo{}
}

func (r *movimientoRepo) Create(_ context.Context, m *model.MovimientoInsumo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.items = append(r.items, *m)
	return nil
}

func (r *movimientoRepo) ListByInsumo(_ context.Context, idInsumo uuid.UUID) ([]model.MovimientoInsumo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []model.MovimientoInsumo
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].IDInsumo == idInsumo {
			result = append(result, r.items[i])
		}
	}
	return result, nil
}
