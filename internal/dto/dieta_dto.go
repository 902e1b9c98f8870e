package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LineaDietaRequest is one composition line as typed in the formula builder.
// IDInsumo arrives as a string and may be blank or reference a deleted insumo;
// Porcentaje coerces blank / garbage to 0 (see Numero).
type LineaDietaRequest struct {
	IDInsumo   string `json:"id_insumo"`
	Porcentaje Numero `json:"porcentaje"`
}

// GuardarDietaRequest serves both create (POST) and replace (PUT).
type GuardarDietaRequest struct {
	Nombre       string              `json:"nombre"       validate:"required,min=2,max=120"`
	Objetivo     string              `json:"objetivo"     validate:"required,oneof=Engorda Destete Mantenimiento Lactancia"`
	Estado       string              `json:"estado"       validate:"omitempty,oneof=Activa 'En revisión' Archivada"`
	Autor        string              `json:"autor"        validate:"max=120"`
	Ingredientes []LineaDietaRequest `json:"ingredientes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// LineaDietaResponse is a resolved composition line. Nombre is
// "Insumo no encontrado" and CostoAportado 0 when the reference dangles.
type LineaDietaResponse struct {
	IDInsumo      string          `json:"id_insumo"`
	Nombre        string          `json:"nombre"`
	Porcentaje    decimal.Decimal `json:"porcentaje"`
	CostoAportado decimal.Decimal `json:"costo_aportado"`
	Encontrado    bool            `json:"encontrado"`
}

type DietaResponse struct {
	ID           string               `json:"id"`
	Nombre       string               `json:"nombre"`
	Objetivo     string               `json:"objetivo"`
	Estado       string               `json:"estado"`
	Autor        string               `json:"autor"`
	Fecha        string               `json:"fecha"`
	CostoKg      decimal.Decimal      `json:"costo_kg"`
	Ingredientes []LineaDietaResponse `json:"ingredientes"`
}

type DietaListResponse struct {
	Data  []DietaResponse `json:"data"`
	Total int             `json:"total"`
}
