// Package moneda formatea importes en pesos mexicanos para tickets y reportes.
// El formato "$1,234.56" es contrato externo del ticket de venta: no cambiarlo.
package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var esMX = message.NewPrinter(language.MustParse("es-MX"))

// Formatear devuelve el importe redondeado a 2 decimales con separador de
// miles y símbolo de pesos: 1234.5 -> "$1,234.50".
func Formatear(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return esMX.Sprintf("$%.2f", f)
}
