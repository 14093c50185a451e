package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del catálogo con su existencia en tienda.
// Stock solo se decrementa al confirmar una venta; nunca se incrementa aquí.
type Producto struct {
	ID             string
	Nombre         string
	Descripcion    string
	PrecioCosto    decimal.Decimal
	PrecioPublico  decimal.Decimal
	Stock          int
	IDDepartamento *string // opcional
	IDProveedor    *string // opcional
	CodigoBarras   *string // opcional, único si existe
	CreadoEn       time.Time
	ActualizadoEn  time.Time

	// Nombres del padre para listados (LEFT JOIN); vacíos fuera de List.
	NombreDepartamento string
	NombreProveedor    string
}
