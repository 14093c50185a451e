package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SesionResponse identifica una sesión de cobro recién abierta.
type SesionResponse struct {
	ID string `json:"id"`
}

// ProductoBusquedaResponse resultado de búsqueda para la pantalla de cobro.
type ProductoBusquedaResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	Descripcion   string          `json:"descripcion"`
	PrecioPublico decimal.Decimal `json:"precio_publico"`
	Stock         int             `json:"stock"`
	CodigoBarras  *string         `json:"codigo_barras,omitempty"`
}

// AgregarLineaRequest entrada para agregar un producto al carrito.
type AgregarLineaRequest struct {
	ProductoID string `json:"producto_id" validate:"required"`
	Cantidad   int    `json:"cantidad" validate:"required,min=1"`
}

// LineaResponse una línea del carrito tal como se muestra en pantalla.
type LineaResponse struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// TotalesResponse totales vigentes del carrito.
type TotalesResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	IVA      decimal.Decimal `json:"iva"`
	Total    decimal.Decimal `json:"total"`
}

// CarritoResponse estado completo del carrito para refrescar la pantalla.
type CarritoResponse struct {
	Lineas  []LineaResponse `json:"lineas"`
	Totales TotalesResponse `json:"totales"`
}

// ConfirmarVentaRequest entrada para confirmar la venta de la sesión.
// ClienteID vacío aplica el cliente mostrador ("Público en General").
type ConfirmarVentaRequest struct {
	ClienteID  string `json:"cliente_id"`
	EmpleadoID string `json:"empleado_id" validate:"required"`
	MetodoPago string `json:"metodo_pago"`
}

// ReciboLineaResponse línea impresa del ticket.
type ReciboLineaResponse struct {
	Cantidad       int             `json:"cantidad"`
	Nombre         string          `json:"nombre"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Importe        decimal.Decimal `json:"importe"`
}

// ReciboResponse ticket de la venta confirmada.
type ReciboResponse struct {
	VentaID    string                `json:"venta_id"`
	Folio      string                `json:"folio"`
	Fecha      time.Time             `json:"fecha"`
	Cliente    string                `json:"cliente"`
	Empleado   string                `json:"empleado"`
	MetodoPago string                `json:"metodo_pago"`
	Lineas     []ReciboLineaResponse `json:"lineas"`
	Subtotal   decimal.Decimal       `json:"subtotal"`
	IVA        decimal.Decimal       `json:"iva"`
	Total      decimal.Decimal       `json:"total"`
	Texto      string                `json:"texto"`
}
