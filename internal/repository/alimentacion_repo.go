package repository

import (
	"context"
	"sync"

	"agrogestor/internal/model"

	"github.com/google/uuid"
)

// AlimentacionRepository stores the daily feeding log per lote.
type AlimentacionRepository interface {
	Create(ctx context.Context, a *model.AlimentacionDiaria) error
	// ListByLote returns feed records newest first.
	ListByLote(ctx context.Context, idLote uuid.UUID) ([]model.AlimentacionDiaria, error)
}

type alimentacionRepo struct {
	mu    sync.RWMutex
	items []model.AlimentacionDiaria
}

func NewAlimentacionRepository() AlimentacionRepository {
	return &alimentacionRepo{}
}

func (r *alimentacionRepo) Create(_ context.Context, a *model.AlimentacionDiaria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.items = append(r.items, *a)
	return nil
}

func (r *alimentacionRepo) ListByLote(_ context.Context, idLote uuid.UUID) ([]model.AlimentacionDiaria, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []model.AlimentacionDiaria
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].IDLote == idLote {
			result = append(result, r.items[i])
		}
	}
	return result, nil
}
