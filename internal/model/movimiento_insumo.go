package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
)

// MovimientoInsumo registra cada ajuste de stock aplicado a un insumo.
// Created only on successful adjustments; rejected ones leave no trace.
type MovimientoInsumo struct {
	ID            uuid.UUID       `json:"id"`
	IDInsumo      uuid.UUID       `json:"id_insumo"`
	Tipo          string          `json:"tipo"` // "entrada" | "salida"
	Cantidad      decimal.Decimal `json:"cantidad"`
	StockAnterior decimal.Decimal `json:"stock_anterior"`
	StockNuevo    decimal.Decimal `json:"stock_nuevo"`
	Motivo        string          `json:"motivo"`
	CreatedAt     time.Time       `json:"created_at"`
}
