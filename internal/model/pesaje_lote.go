package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PesajeLote is one weighing of a lot: it moves Lote.PesoPromedio and keeps
// the before/after pair, like MovimientoInsumo does for stock. GananciaDiaria
// is the average daily gain against the previous weighing; nil on the first
// weighing or when both fall on the same date.
type PesajeLote struct {
	ID             uuid.UUID        `json:"id"`
	IDLote         uuid.UUID        `json:"id_lote"`
	Fecha          time.Time        `json:"fecha"`
	PesoAnterior   decimal.Decimal  `json:"peso_anterior"`
	PesoNuevo      decimal.Decimal  `json:"peso_nuevo"`
	GananciaDiaria *decimal.Decimal `json:"ganancia_diaria"`
	Notas          string           `json:"notas"`
	CreatedAt      time.Time        `json:"created_at"`
}
