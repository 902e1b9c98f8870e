package service

import (
	"context"
	"time"

	"agrogestor/internal/dto"
	"agrogestor/internal/model"
	"agrogestor/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// TotalPorcentaje sums the inclusion percentages of a composition. Blank and
// non-numeric inputs were already coerced to 0 at the DTO boundary, so the
// sum is always well-defined.
func TotalPorcentaje(lineas []model.DietaInsumo) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lineas {
		total = total.Add(l.Porcentaje)
	}
	return total
}

// CostoPorKg blends the cost of a composition against an insumo snapshot.
// Each resolved line contributes costo_kg * (porcentaje / 100); dangling lines
// contribute nothing. Accumulation runs at full precision and rounds once at
// the end, so per-line rounding error never compounds.
func CostoPorKg(lineas []model.DietaInsumo, insumos map[uuid.UUID]model.Insumo) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lineas {
		insumo, ok := insumos[l.IDInsumo]
		if !ok {
			continue
		}
		total = total.Add(insumo.CostoKg.Mul(l.Porcentaje.Div(cien)))
	}
	return total.Round(2)
}

// DietaService is the ration composer: it validates a draft mixture, prices
// it against the current insumo snapshot and persists the result. CostoKg is
// only ever written here; ingredient price changes never rewrite a saved
// dieta's cost.
type DietaService interface {
	Guardar(ctx context.Context, req dto.GuardarDietaRequest) (*dto.DietaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarDietaRequest) (*dto.DietaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.DietaResponse, error)
	Listar(ctx context.Context) (*dto.DietaListResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type dietaService struct {
	repo       repository.DietaRepository
	insumoRepo repository.InsumoRepository
}

func NewDietaService(repo repository.DietaRepository, insumoRepo repository.InsumoRepository) DietaService {
	return &dietaService{repo: repo, insumoRepo: insumoRepo}
}

// Guardar creates a new dieta from a draft: fresh identity, creation date and
// author stamp, cost snapshot from current prices.
func (s *dietaService) Guardar(ctx context.Context, req dto.GuardarDietaRequest) (*dto.DietaResponse, error) {
	lineas := lineasFromRequest(req.Ingredientes)
	if err := validarComposicion(lineas); err != nil {
		return nil, err
	}
	snapshot, err := s.snapshotInsumos(ctx)
	if err != nil {
		return nil, err
	}

	estado := req.Estado
	if estado == "" {
		estado = model.DietaActiva
	}
	dieta := &model.Dieta{
		Nombre:       req.Nombre,
		Objetivo:     req.Objetivo,
		Estado:       estado,
		Autor:        req.Autor,
		Fecha:        time.Now(),
		CostoKg:      CostoPorKg(lineas, snapshot),
		Ingredientes: lineas,
	}
	if err := s.repo.Create(ctx, dieta); err != nil {
		return nil, err
	}
	return dietaToResponse(dieta, snapshot), nil
}

// Actualizar replaces an existing dieta's fields in place, recomputing the
// cost snapshot. Creation date survives; the author is only replaced when the
// request names one.
func (s *dietaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarDietaRequest) (*dto.DietaResponse, error) {
	dieta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lineas := lineasFromRequest(req.Ingredientes)
	if err := validarComposicion(lineas); err != nil {
		return nil, err
	}
	snapshot, err := s.snapshotInsumos(ctx)
	if err != nil {
		return nil, err
	}

	dieta.Nombre = req.Nombre
	dieta.Objetivo = req.Objetivo
	if req.Estado != "" {
		dieta.Estado = req.Estado
	}
	if req.Autor != "" {
		dieta.Autor = req.Autor
	}
	dieta.CostoKg = CostoPorKg(lineas, snapshot)
	dieta.Ingredientes = lineas

	if err := s.repo.Update(ctx, dieta); err != nil {
		return nil, err
	}
	return dietaToResponse(dieta, snapshot), nil
}

func (s *dietaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.DietaResponse, error) {
	dieta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.snapshotInsumos(ctx)
	if err != nil {
		return nil, err
	}
	return dietaToResponse(dieta, snapshot), nil
}

func (s *dietaService) Listar(ctx context.Context) (*dto.DietaListResponse, error) {
	dietas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.snapshotInsumos(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.DietaResponse, 0, len(dietas))
	for idx := range dietas {
		data = append(data, *dietaToResponse(&dietas[idx], snapshot))
	}
	return &dto.DietaListResponse{Data: data, Total: len(data)}, nil
}

func (s *dietaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// validarComposicion gates saving: non-empty and summing to exactly 100.
// Strict equality: 99.99 is rejected, there is no tolerance band.
func validarComposicion(lineas []model.DietaInsumo) error {
	if len(lineas) == 0 {
		return newValidationError("la fórmula debe incluir al menos un insumo")
	}
	if !TotalPorcentaje(lineas).Equal(cien) {
		return newValidationError("el porcentaje total debe ser exactamente 100%")
	}
	return nil
}

// lineasFromRequest converts draft lines to model lines. An IDInsumo that is
// not a valid uuid becomes uuid.Nil, which never resolves; the line survives
// as a dangling reference instead of failing the save.
func lineasFromRequest(lineas []dto.LineaDietaRequest) []model.DietaInsumo {
	result := make([]model.DietaInsumo, 0, len(lineas))
	for _, l := range lineas {
		id, err := uuid.Parse(l.IDInsumo)
		if err != nil {
			id = uuid.Nil
		}
		result = append(result, model.DietaInsumo{IDInsumo: id, Porcentaje: l.Porcentaje.Decimal})
	}
	return result
}

func (s *dietaService) snapshotInsumos(ctx context.Context) (map[uuid.UUID]model.Insumo, error) {
	insumos, err := s.insumoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := make(map[uuid.UUID]model.Insumo, len(insumos))
	for _, i := range insumos {
		snapshot[i.ID] = i
	}
	return snapshot, nil
}

// insumoNoEncontrado is the display label for a dangling composition line.
const insumoNoEncontrado = "Insumo no encontrado"

func dietaToResponse(d *model.Dieta, insumos map[uuid.UUID]model.Insumo) *dto.DietaResponse {
	lineas := make([]dto.LineaDietaResponse, 0, len(d.Ingredientes))
	for _, l := range d.Ingredientes {
		linea := dto.LineaDietaResponse{
			IDInsumo:      l.IDInsumo.String(),
			Nombre:        insumoNoEncontrado,
			Porcentaje:    l.Porcentaje,
			CostoAportado: decimal.Zero.Round(2),
		}
		if insumo, ok := insumos[l.IDInsumo]; ok {
			linea.Nombre = insumo.Nombre
			linea.CostoAportado = insumo.CostoKg.Mul(l.Porcentaje.Div(cien)).Round(2)
			linea.Encontrado = true
		}
		lineas = append(lineas, linea)
	}
	return &dto.DietaResponse{
		ID:           d.ID.String(),
		Nombre:       d.Nombre,
		Objetivo:     d.Objetivo,
		Estado:       d.Estado,
		Autor:        d.Autor,
		Fecha:        d.Fecha.Format("02/01/2006"),
		CostoKg:      d.CostoKg,
		Ingredientes: lineas,
	}
}
