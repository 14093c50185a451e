package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaResponse cabecera de una venta para el historial.
type VentaResponse struct {
	ID         string                 `json:"id"`
	Folio      string                 `json:"folio"`
	Fecha      time.Time              `json:"fecha"`
	Cliente    string                 `json:"cliente"`
	Empleado   string                 `json:"empleado"`
	Subtotal   decimal.Decimal        `json:"subtotal"`
	IVA        decimal.Decimal        `json:"iva"`
	Total      decimal.Decimal        `json:"total"`
	Estado     string                 `json:"estado"`
	MetodoPago string                 `json:"metodo_pago"`
	Detalles   []DetalleVentaResponse `json:"detalles,omitempty"`
}

// DetalleVentaResponse línea del detalle de una venta.
type DetalleVentaResponse struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Importe        decimal.Decimal `json:"importe"`
}

// VentaListResponse lista paginada de ventas.
type VentaListResponse struct {
	Items []VentaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
