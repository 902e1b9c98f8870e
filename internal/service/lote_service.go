package service

import (
	"context"
	"strings"
	"time"

	"agrogestor/internal/dto"
	"agrogestor/internal/model"
	"agrogestor/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CostoDiario projects the daily feed cost of a lote against a dieta
// snapshot: consumo diario * costo_kg de la dieta asignada. Zero when no
// dieta is assigned or the reference dangles. Pure, safe to call repeatedly
// from the report roll-ups.
func CostoDiario(l *model.Lote, dietas map[uuid.UUID]model.Dieta) decimal.Decimal {
	if l.IDDieta == nil {
		return decimal.Zero
	}
	dieta, ok := dietas[*l.IDDieta]
	if !ok {
		return decimal.Zero
	}
	return l.ConsumoDiario().Mul(dieta.CostoKg)
}

// LoteService manages animal lots, their feed cost projections, the weighing
// history and the daily feeding log.
type LoteService interface {
	Crear(ctx context.Context, req dto.GuardarLoteRequest) (*dto.LoteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.LoteResponse, error)
	Listar(ctx context.Context, filter dto.LoteFilter) (*dto.LoteListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarLoteRequest) (*dto.LoteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Proyeccion(ctx context.Context, id uuid.UUID) (*dto.ProyeccionLoteResponse, error)
	RegistrarPesaje(ctx context.Context, id uuid.UUID, req dto.RegistrarPesajeRequest) (*dto.PesajeResponse, error)
	Pesajes(ctx context.Context, id uuid.UUID) ([]dto.PesajeResponse, error)
	RegistrarAlimentacion(ctx context.Context, id uuid.UUID, req dto.RegistrarAlimentacionRequest) (*dto.AlimentacionResponse, error)
	Alimentacion(ctx context.Context, id uuid.UUID) ([]dto.AlimentacionResponse, error)
}

type loteService struct {
	repo         repository.LoteRepository
	dietaRepo    repository.DietaRepository
	pesajes      repository.PesajeRepository
	alimentacion repository.AlimentacionRepository
}

func NewLoteService(repo repository.LoteRepository, dietaRepo repository.DietaRepository, pesajes repository.PesajeRepository, alimentacion repository.AlimentacionRepository) LoteService {
	return &loteService{repo: repo, dietaRepo: dietaRepo, pesajes: pesajes, alimentacion: alimentacion}
}

func (s *loteService) Crear(ctx context.Context, req dto.GuardarLoteRequest) (*dto.LoteResponse, error) {
	now := time.Now()
	lote := &model.Lote{
		Nombre:       req.Nombre,
		Cabezas:      req.Cabezas,
		PesoPromedio: req.PesoPromedio.Decimal,
		Etapa:        req.Etapa,
		Estado:       req.Estado,
		IDDieta:      parseIDDieta(req.IDDieta),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if lote.Estado == "" {
		lote.Estado = model.LoteActivo
	}
	if err := s.repo.Create(ctx, lote); err != nil {
		return nil, err
	}
	return s.loteToResponse(ctx, lote)
}

func (s *loteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.LoteResponse, error) {
	lote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.loteToResponse(ctx, lote)
}

func (s *loteService) Listar(ctx context.Context, filter dto.LoteFilter) (*dto.LoteListResponse, error) {
	lotes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dietas, err := s.snapshotDietas(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.LoteResponse, 0, len(lotes))
	for idx := range lotes {
		l := &lotes[idx]
		if filter.Q != "" && !strings.Contains(strings.ToLower(l.Nombre), strings.ToLower(filter.Q)) {
			continue
		}
		if filter.Etapa != "" && l.Etapa != filter.Etapa {
			continue
		}
		data = append(data, *loteToResponse(l, dietas))
	}
	return &dto.LoteListResponse{Data: data, Total: len(data)}, nil
}

func (s *loteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarLoteRequest) (*dto.LoteResponse, error) {
	lote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lote.Nombre = req.Nombre
	lote.Cabezas = req.Cabezas
	lote.PesoPromedio = req.PesoPromedio.Decimal
	lote.Etapa = req.Etapa
	if req.Estado != "" {
		lote.Estado = req.Estado
	}
	lote.IDDieta = parseIDDieta(req.IDDieta)
	lote.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, lote); err != nil {
		return nil, err
	}
	return s.loteToResponse(ctx, lote)
}

func (s *loteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Proyeccion returns the daily consumption and cost estimate for one lote.
// Costs are rounded to 2 decimals at this edge only.
func (s *loteService) Proyeccion(ctx context.Context, id uuid.UUID) (*dto.ProyeccionLoteResponse, error) {
	lote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dietas, err := s.snapshotDietas(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProyeccionLoteResponse{
		IDLote:          lote.ID.String(),
		ConsumoDiarioKg: lote.ConsumoDiario().Round(2),
		CostoDiario:     CostoDiario(lote, dietas).Round(2),
	}, nil
}

const formatoFecha = "2006-01-02"

// parseFecha accepts a blank date (today) or an ISO day.
func parseFecha(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	fecha, err := time.Parse(formatoFecha, raw)
	if err != nil {
		return time.Time{}, newValidationError("la fecha debe tener el formato 2006-01-02")
	}
	return fecha, nil
}

// RegistrarPesaje records a weighing and moves the lot's average weight, the
// same way AjustarStock moves an insumo's quantity. Daily gain is derived
// against the previous weighing when at least one day separates them.
func (s *loteService) RegistrarPesaje(ctx context.Context, id uuid.UUID, req dto.RegistrarPesajeRequest) (*dto.PesajeResponse, error) {
	if !req.PesoPromedio.IsPositive() {
		return nil, newValidationError("el peso promedio debe ser mayor a cero")
	}
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}

	lote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previos, err := s.pesajes.ListByLote(ctx, id)
	if err != nil {
		return nil, err
	}
	var ganancia *decimal.Decimal
	if len(previos) > 0 {
		dias := int64(fecha.Sub(previos[0].Fecha).Hours() / 24)
		if dias > 0 {
			g := req.PesoPromedio.Sub(previos[0].PesoNuevo).
				Div(decimal.NewFromInt(dias)).Round(2)
			ganancia = &g
		}
	}

	anterior := lote.PesoPromedio
	lote.PesoPromedio = req.PesoPromedio.Decimal
	lote.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, lote); err != nil {
		return nil, err
	}

	pesaje := &model.PesajeLote{
		IDLote:         lote.ID,
		Fecha:          fecha,
		PesoAnterior:   anterior,
		PesoNuevo:      lote.PesoPromedio,
		GananciaDiaria: ganancia,
		Notas:          req.Notas,
		CreatedAt:      time.Now(),
	}
	if err := s.pesajes.Create(ctx, pesaje); err != nil {
		return nil, err
	}

	log.Info().
		Str("lote", lote.Nombre).
		Str("peso_nuevo", lote.PesoPromedio.String()).
		Msg("pesaje registrado")

	return pesajeToResponse(pesaje), nil
}

func (s *loteService) Pesajes(ctx context.Context, id uuid.UUID) ([]dto.PesajeResponse, error) {
	pesajes, err := s.pesajes.ListByLote(ctx, id)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PesajeResponse, 0, len(pesajes))
	for idx := range pesajes {
		result = append(result, *pesajeToResponse(&pesajes[idx]))
	}
	return result, nil
}

// RegistrarAlimentacion appends one served ration to the feeding log. The
// amount defaults to the projected daily consumption; the cost is a snapshot
// of cantidad * the assigned dieta's costo_kg, 0 when no dieta resolves.
func (s *loteService) RegistrarAlimentacion(ctx context.Context, id uuid.UUID, req dto.RegistrarAlimentacionRequest) (*dto.AlimentacionResponse, error) {
	if req.CantidadServidaKg.IsNegative() {
		return nil, newValidationError("la cantidad servida no puede ser negativa")
	}
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}

	lote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dietas, err := s.snapshotDietas(ctx)
	if err != nil {
		return nil, err
	}

	cantidad := req.CantidadServidaKg.Decimal
	if cantidad.IsZero() {
		cantidad = lote.ConsumoDiario()
	}
	costo := decimal.Zero
	var idDieta *uuid.UUID
	if lote.IDDieta != nil {
		v := *lote.IDDieta
		idDieta = &v
		if dieta, ok := dietas[v]; ok {
			costo = cantidad.Mul(dieta.CostoKg).Round(2)
		}
	}

	registro := &model.AlimentacionDiaria{
		IDLote:            lote.ID,
		IDDieta:           idDieta,
		Fecha:             fecha,
		CantidadServidaKg: cantidad,
		CostoTotalRacion:  costo,
		CreatedAt:         time.Now(),
	}
	if err := s.alimentacion.Create(ctx, registro); err != nil {
		return nil, err
	}

	log.Info().
		Str("lote", lote.Nombre).
		Str("cantidad_kg", cantidad.String()).
		Str("costo", costo.String()).
		Msg("alimentación registrada")

	return alimentacionToResponse(registro), nil
}

func (s *loteService) Alimentacion(ctx context.Context, id uuid.UUID) ([]dto.AlimentacionResponse, error) {
	registros, err := s.alimentacion.ListByLote(ctx, id)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AlimentacionResponse, 0, len(registros))
	for idx := range registros {
		result = append(result, *alimentacionToResponse(&registros[idx]))
	}
	return result, nil
}

func pesajeToResponse(p *model.PesajeLote) *dto.PesajeResponse {
	return &dto.PesajeResponse{
		ID:             p.ID.String(),
		IDLote:         p.IDLote.String(),
		Fecha:          p.Fecha.Format("02/01/2006"),
		PesoAnterior:   p.PesoAnterior,
		PesoNuevo:      p.PesoNuevo,
		GananciaDiaria: p.GananciaDiaria,
		Notas:          p.Notas,
	}
}

func alimentacionToResponse(a *model.AlimentacionDiaria) *dto.AlimentacionResponse {
	resp := &dto.AlimentacionResponse{
		ID:                a.ID.String(),
		IDLote:            a.IDLote.String(),
		Fecha:             a.Fecha.Format("02/01/2006"),
		CantidadServidaKg: a.CantidadServidaKg.Round(2),
		CostoTotalRacion:  a.CostoTotalRacion,
	}
	if a.IDDieta != nil {
		id := a.IDDieta.String()
		resp.IDDieta = &id
	}
	return resp
}

// parseIDDieta keeps the soft-reference semantics: a blank id means no dieta,
// a malformed one is stored as nil as well (nothing it could ever resolve to).
func parseIDDieta(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func (s *loteService) snapshotDietas(ctx context.Context) (map[uuid.UUID]model.Dieta, error) {
	dietas, err := s.dietaRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := make(map[uuid.UUID]model.Dieta, len(dietas))
	for _, d := range dietas {
		snapshot[d.ID] = d
	}
	return snapshot, nil
}

func (s *loteService) loteToResponse(ctx context.Context, l *model.Lote) (*dto.LoteResponse, error) {
	dietas, err := s.snapshotDietas(ctx)
	if err != nil {
		return nil, err
	}
	return loteToResponse(l, dietas), nil
}

func loteToResponse(l *model.Lote, dietas map[uuid.UUID]model.Dieta) *dto.LoteResponse {
	resp := &dto.LoteResponse{
		ID:           l.ID.String(),
		Nombre:       l.Nombre,
		Cabezas:      l.Cabezas,
		PesoPromedio: l.PesoPromedio,
		Etapa:        l.Etapa,
		Estado:       l.Estado,
	}
	if l.IDDieta != nil {
		id := l.IDDieta.String()
		resp.IDDieta = &id
		if dieta, ok := dietas[*l.IDDieta]; ok {
			nombre := dieta.Nombre
			resp.Dieta = &nombre
		}
	}
	return resp
}
