package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de un lote.
const (
	LoteActivo     = "Activo"
	LoteVendido    = "Vendido"
	LoteCuarentena = "Cuarentena"
)

// consumoDiarioPct: daily intake is estimated at 3% of live weight. Fixed
// policy value, not configurable per lot.
var consumoDiarioPct = decimal.NewFromFloat(0.03)

// Lote is a group of animals sharing a production stage and, optionally, an
// assigned dieta. IDDieta is a soft reference: it may be nil or point at a
// deleted dieta, in which case cost projections degrade to zero.
type Lote struct {
	ID           uuid.UUID       `json:"id"`
	Nombre       string          `json:"nombre"`
	Cabezas      int             `json:"cabezas"`
	PesoPromedio decimal.Decimal `json:"peso_promedio"`
	Etapa        string          `json:"etapa"`
	Estado       string          `json:"estado"`
	IDDieta      *uuid.UUID      `json:"id_dieta"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ConsumoDiario returns the projected daily feed intake in kg for the whole
// lot: peso_promedio * 0.03 * cabezas.
func (l *Lote) ConsumoDiario() decimal.Decimal {
	return l.PesoPromedio.Mul(consumoDiarioPct).Mul(decimal.NewFromInt(int64(l.Cabezas)))
}
