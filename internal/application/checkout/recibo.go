package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sears-pos/pkg/moneda"
)

// ReciboLinea línea impresa del ticket.
type ReciboLinea struct {
	Cantidad       int
	Nombre         string
	PrecioUnitario decimal.Decimal
	Importe        decimal.Decimal
}

// Recibo es el comprobante que se devuelve a la pantalla de cobro tras
// confirmar una venta.
type Recibo struct {
	VentaID    string
	Folio      string
	Fecha      time.Time
	Cliente    string
	Empleado   string
	MetodoPago string
	Lineas     []ReciboLinea
	Subtotal   decimal.Decimal
	IVA        decimal.Decimal
	Total      decimal.Decimal
}

// Texto renderiza el ticket en texto plano para impresoras de caja.
func (r *Recibo) Texto() string {
	var b strings.Builder
	sep := strings.Repeat("-", 40)

	fmt.Fprintln(&b, "        SISTEMA DE GESTIÓN SEARS")
	fmt.Fprintln(&b, sep)
	fmt.Fprintf(&b, "Folio:    %s\n", r.Folio)
	fmt.Fprintf(&b, "Fecha:    %s\n", r.Fecha.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "Cliente:  %s\n", r.Cliente)
	fmt.Fprintf(&b, "Atendió:  %s\n", r.Empleado)
	fmt.Fprintf(&b, "Pago:     %s\n", r.MetodoPago)
	fmt.Fprintln(&b, sep)
	for _, l := range r.Lineas {
		fmt.Fprintf(&b, "%3d x %-22s %s\n", l.Cantidad, recortar(l.Nombre, 22), moneda.Formatear(l.Importe))
	}
	fmt.Fprintln(&b, sep)
	fmt.Fprintf(&b, "%-28s %s\n", "Subtotal:", moneda.Formatear(r.Subtotal))
	fmt.Fprintf(&b, "%-28s %s\n", "IVA (16%):", moneda.Formatear(r.IVA))
	fmt.Fprintf(&b, "%-28s %s\n", "TOTAL:", moneda.Formatear(r.Total))
	fmt.Fprintln(&b, sep)
	fmt.Fprintln(&b, "     ¡Gracias por su compra!")
	return b.String()
}

func recortar(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
