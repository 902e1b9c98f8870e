package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlimentacionDiaria is one served ration: how many kg a lot was fed on a
// date and what that serving cost. IDDieta and CostoTotalRacion are snapshots
// taken at record time; later dieta changes or deletions never rewrite them.
type AlimentacionDiaria struct {
	ID                uuid.UUID       `json:"id"`
	IDLote            uuid.UUID       `json:"id_lote"`
	IDDieta           *uuid.UUID      `json:"id_dieta"`
	Fecha             time.Time       `json:"fecha"`
	CantidadServidaKg decimal.Decimal `json:"cantidad_servida_kg"`
	CostoTotalRacion  decimal.Decimal `json:"costo_total_racion"`
	CreatedAt         time.Time       `json:"created_at"`
}
