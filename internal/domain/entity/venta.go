package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. Una venta confirmada queda PAGADA e inmutable.
const (
	VentaPagada = "PAGADA"
)

// Métodos de pago aceptados en caja.
const (
	PagoEfectivo = "EFECTIVO"
	PagoTarjeta  = "TARJETA"
)

// Venta representa la cabecera de una venta confirmada.
// Invariante: Total = Subtotal + IVA, y Subtotal = suma de los importes del detalle.
type Venta struct {
	ID         string
	Folio      string // contrato externo: V-YYYYMMDD-NNNN
	IDCliente  string
	IDEmpleado string
	Fecha      time.Time
	Subtotal   decimal.Decimal
	IVA        decimal.Decimal
	Total      decimal.Decimal
	Estado     string
	MetodoPago string
	CreadoEn   time.Time

	// Nombres para listados y ticket (LEFT JOIN); vacíos fuera de lecturas.
	NombreCliente  string
	NombreEmpleado string
}

// DetalleVenta representa una línea del detalle de una venta.
// Importe = Cantidad × PrecioUnitario (precio capturado al agregar al carrito).
type DetalleVenta struct {
	IDVenta        string
	IDProducto     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Importe        decimal.Decimal

	NombreProducto string // para ticket (JOIN)
}
