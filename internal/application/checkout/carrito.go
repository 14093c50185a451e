// Package checkout implementa el motor de cobro: carrito en memoria por
// sesión, validación de stock, totales con IVA y confirmación atómica de la
// venta. Es independiente de HTTP y de cualquier tecnología de presentación.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sears-pos/internal/domain"
	"github.com/tu-usuario/sears-pos/internal/domain/entity"
)

// TasaIVA es la tasa fija de impuesto aplicada a toda venta (16%).
// Contrato externo: no cambiarla sin cambiar los tickets esperados.
var TasaIVA = decimal.New(16, -2)

// Linea es una línea pendiente del carrito. El precio unitario se captura al
// agregar el producto por primera vez y no se vuelve a leer en los merges.
type Linea struct {
	ProductoID     string
	Nombre         string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	StockConocido  int // último stock leído del producto, tope para merges
}

// Subtotal devuelve Cantidad × PrecioUnitario.
func (l Linea) Subtotal() decimal.Decimal {
	return l.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// Totales montos vigentes del carrito.
type Totales struct {
	Subtotal decimal.Decimal
	IVA      decimal.Decimal
	Total    decimal.Decimal
}

// Carrito es la colección ordenada de líneas de la sesión activa, a lo más una
// línea por producto. No se persiste mientras está abierto.
type Carrito struct {
	lineas []Linea
}

// Vacio indica si el carrito no tiene líneas.
func (c *Carrito) Vacio() bool { return len(c.lineas) == 0 }

// Lineas devuelve una copia de las líneas en orden de inserción.
func (c *Carrito) Lineas() []Linea {
	out := make([]Linea, len(c.lineas))
	copy(out, c.lineas)
	return out
}

// Agregar suma el producto al carrito. Si ya existe una línea para ese
// producto se fusionan las cantidades; el precio unitario original se
// conserva. Rechaza con StockInsuficienteError si la cantidad acumulada
// supera el último stock conocido, dejando el carrito sin cambios.
func (c *Carrito) Agregar(p *entity.Producto, cantidad int) error {
	if p == nil || cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	for i := range c.lineas {
		if c.lineas[i].ProductoID != p.ID {
			continue
		}
		// Merge: el stock recién leído sustituye al conocido
		acumulado := c.lineas[i].Cantidad + cantidad
		if acumulado > p.Stock {
			return &domain.StockInsuficienteError{
				ProductoID: p.ID,
				Nombre:     p.Nombre,
				Solicitado: acumulado,
				Disponible: p.Stock,
			}
		}
		c.lineas[i].Cantidad = acumulado
		c.lineas[i].StockConocido = p.Stock
		return nil
	}
	if cantidad > p.Stock {
		return &domain.StockInsuficienteError{
			ProductoID: p.ID,
			Nombre:     p.Nombre,
			Solicitado: cantidad,
			Disponible: p.Stock,
		}
	}
	c.lineas = append(c.lineas, Linea{
		ProductoID:     p.ID,
		Nombre:         p.Nombre,
		Cantidad:       cantidad,
		PrecioUnitario: p.PrecioPublico,
		StockConocido:  p.Stock,
	})
	return nil
}

// Quitar elimina la línea en la posición dada. Fuera de rango es un no-op:
// el índice siempre proviene de la tabla en pantalla.
func (c *Carrito) Quitar(indice int) {
	if indice < 0 || indice >= len(c.lineas) {
		return
	}
	c.lineas = append(c.lineas[:indice], c.lineas[indice+1:]...)
}

// Vaciar descarta todas las líneas.
func (c *Carrito) Vaciar() { c.lineas = nil }

// CalcularTotales recalcula subtotal, IVA (16%) y total. Se invoca después de
// cada mutación del carrito.
func (c *Carrito) CalcularTotales() Totales {
	subtotal := decimal.Zero
	for _, l := range c.lineas {
		subtotal = subtotal.Add(l.Subtotal())
	}
	subtotal = subtotal.Round(2)
	iva := subtotal.Mul(TasaIVA).Round(2)
	return Totales{
		Subtotal: subtotal,
		IVA:      iva,
		Total:    subtotal.Add(iva),
	}
}
