package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de una dieta. Free-form transitions: the operator sets the state,
// the engine never derives it.
const (
	DietaActiva    = "Activa"
	DietaRevision  = "En revisión"
	DietaArchivada = "Archivada"
)

// Objetivos productivos, shared with Lote.Etapa.
const (
	ObjetivoEngorda       = "Engorda"
	ObjetivoDestete       = "Destete"
	ObjetivoMantenimiento = "Mantenimiento"
	ObjetivoLactancia     = "Lactancia"
)

// DietaInsumo is one composition line: a soft reference to an Insumo plus its
// inclusion percentage. IDInsumo may point at a deleted ingredient; such a
// line contributes zero cost and renders as "Insumo no encontrado".
type DietaInsumo struct {
	IDInsumo   uuid.UUID       `json:"id_insumo"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

// Dieta is a feed ration: an ordered mixture of insumos by percentage with a
// derived cost per kg. CostoKg is a snapshot written exclusively at save time;
// later ingredient price changes never rewrite it, so historical costs stay
// reproducible.
type Dieta struct {
	ID           uuid.UUID       `json:"id"`
	Nombre       string          `json:"nombre"`
	Objetivo     string          `json:"objetivo"`
	Estado       string          `json:"estado"`
	Autor        string          `json:"autor"`
	Fecha        time.Time       `json:"fecha"`
	CostoKg      decimal.Decimal `json:"costo_kg"`
	Ingredientes []DietaInsumo   `json:"ingredientes"`
}
