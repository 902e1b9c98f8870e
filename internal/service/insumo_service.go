package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"agrogestor/internal/dto"
	"agrogestor/internal/model"
	"agrogestor/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// InsumoService is the ingredient ledger: registration, edits, stock
// adjustments with movement history, and the risk/valuation read models.
type InsumoService interface {
	Registrar(ctx context.Context, req dto.GuardarInsumoRequest) (*dto.InsumoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.InsumoResponse, error)
	Listar(ctx context.Context, filter dto.InsumoFilter) (*dto.InsumoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarInsumoRequest) (*dto.InsumoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (*dto.InsumoResponse, error)
	Movimientos(ctx context.Context, id uuid.UUID) ([]dto.MovimientoResponse, error)
	Alertas(ctx context.Context) ([]dto.InsumoResponse, error)
}

type insumoService struct {
	repo        repository.InsumoRepository
	movimientos repository.MovimientoRepository
}

func NewInsumoService(repo repository.InsumoRepository, movimientos repository.MovimientoRepository) InsumoService {
	return &insumoService{repo: repo, movimientos: movimientos}
}

func (s *insumoService) Registrar(ctx context.Context, req dto.GuardarInsumoRequest) (*dto.InsumoResponse, error) {
	now := time.Now()
	insumo := &model.Insumo{
		Nombre:         req.Nombre,
		CantidadActual: req.CantidadActual.Decimal,
		StockMinimo:    req.StockMinimo.Decimal,
		CostoKg:        req.CostoKg.Decimal,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, insumo); err != nil {
		return nil, err
	}
	return insumoToResponse(insumo), nil
}

func (s *insumoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.InsumoResponse, error) {
	insumo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return insumoToResponse(insumo), nil
}

func (s *insumoService) Listar(ctx context.Context, filter dto.InsumoFilter) (*dto.InsumoListResponse, error) {
	insumos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	valorInventario := decimal.Zero
	criticos := 0
	data := make([]dto.InsumoResponse, 0, len(insumos))
	for idx := range insumos {
		i := &insumos[idx]
		// Totals cover the whole inventory, not just the filtered page.
		valorInventario = valorInventario.Add(i.ValorTotal())
		esCritico := i.NivelStock() == model.NivelCritico
		if esCritico {
			criticos++
		}

		if filter.Q != "" && !strings.Contains(strings.ToLower(i.Nombre), strings.ToLower(filter.Q)) {
			continue
		}
		// The list filter is binary, matching the capture form: "criticos"
		// shows only Crítico, "adecuados" everything else.
		switch filter.Estado {
		case "criticos":
			if !esCritico {
				continue
			}
		case "adecuados":
			if esCritico {
				continue
			}
		}
		data = append(data, *insumoToResponse(i))
	}

	return &dto.InsumoListResponse{
		Data:            data,
		Total:           len(data),
		ValorInventario: valorInventario,
		Criticos:        criticos,
	}, nil
}

func (s *insumoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarInsumoRequest) (*dto.InsumoResponse, error) {
	insumo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	insumo.Nombre = req.Nombre
	insumo.CantidadActual = req.CantidadActual.Decimal
	insumo.StockMinimo = req.StockMinimo.Decimal
	insumo.CostoKg = req.CostoKg.Decimal
	insumo.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, insumo); err != nil {
		return nil, err
	}
	return insumoToResponse(insumo), nil
}

func (s *insumoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// AjustarStock applies an entrada or salida. All-or-nothing: a rejected
// adjustment leaves the insumo untouched and records no movement.
func (s *insumoService) AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (*dto.InsumoResponse, error) {
	if !req.Cantidad.IsPositive() {
		return nil, newValidationError("la cantidad del ajuste debe ser mayor a cero")
	}

	insumo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	anterior := insumo.CantidadActual
	switch req.Tipo {
	case model.MovimientoEntrada:
		insumo.CantidadActual = anterior.Add(req.Cantidad.Decimal)
	case model.MovimientoSalida:
		if req.Cantidad.GreaterThan(anterior) {
			return nil, ErrStockInsuficiente
		}
		insumo.CantidadActual = anterior.Sub(req.Cantidad.Decimal)
	default:
		return nil, newValidationError("tipo de movimiento desconocido")
	}
	insumo.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, insumo); err != nil {
		return nil, err
	}

	mov := &model.MovimientoInsumo{
		IDInsumo:      insumo.ID,
		Tipo:          req.Tipo,
		Cantidad:      req.Cantidad.Decimal,
		StockAnterior: anterior,
		StockNuevo:    insumo.CantidadActual,
		Motivo:        req.Motivo,
		CreatedAt:     time.Now(),
	}
	if err := s.movimientos.Create(ctx, mov); err != nil {
		return nil, err
	}

	log.Info().
		Str("insumo", insumo.Nombre).
		Str("tipo", req.Tipo).
		Str("cantidad", req.Cantidad.String()).
		Str("stock_nuevo", insumo.CantidadActual.String()).
		Msg("stock ajustado")

	return insumoToResponse(insumo), nil
}

func (s *insumoService) Movimientos(ctx context.Context, id uuid.UUID) ([]dto.MovimientoResponse, error) {
	movs, err := s.movimientos.ListByInsumo(ctx, id)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		result = append(result, dto.MovimientoResponse{
			ID:            m.ID.String(),
			IDInsumo:      m.IDInsumo.String(),
			Tipo:          m.Tipo,
			Cantidad:      m.Cantidad,
			StockAnterior: m.StockAnterior,
			StockNuevo:    m.StockNuevo,
			Motivo:        m.Motivo,
			CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

// Alertas returns insumos classified Crítico or Bajo, most scarce first.
func (s *insumoService) Alertas(ctx context.Context) ([]dto.InsumoResponse, error) {
	insumos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return insumosEnRiesgo(insumos), nil
}

// insumosEnRiesgo filters to Crítico/Bajo and sorts ascending by quantity.
// Shared with the report roll-ups.
func insumosEnRiesgo(insumos []model.Insumo) []dto.InsumoResponse {
	var riesgo []model.Insumo
	for _, i := range insumos {
		if i.EnRiesgo() {
			riesgo = append(riesgo, i)
		}
	}
	sort.SliceStable(riesgo, func(a, b int) bool {
		return riesgo[a].CantidadActual.LessThan(riesgo[b].CantidadActual)
	})
	result := make([]dto.InsumoResponse, 0, len(riesgo))
	for idx := range riesgo {
		result = append(result, *insumoToResponse(&riesgo[idx]))
	}
	return result
}

func insumoToResponse(i *model.Insumo) *dto.InsumoResponse {
	return &dto.InsumoResponse{
		ID:             i.ID.String(),
		Nombre:         i.Nombre,
		CantidadActual: i.CantidadActual,
		StockMinimo:    i.StockMinimo,
		CostoKg:        i.CostoKg,
		ValorTotal:     i.ValorTotal(),
		Nivel:          string(i.NivelStock()),
	}
}
