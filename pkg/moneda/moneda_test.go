package moneda_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/sears-pos/pkg/moneda"
)

func TestFormatear_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "$1,234.56", moneda.Formatear(decimal.NewFromFloat(1234.56)))
}

func TestFormatear_RedondeaADosDecimales(t *testing.T) {
	assert.Equal(t, "$10.00", moneda.Formatear(decimal.NewFromInt(10)))
	assert.Equal(t, "$0.35", moneda.Formatear(decimal.NewFromFloat(0.345)))
}

func TestFormatear_Cero(t *testing.T) {
	assert.Equal(t, "$0.00", moneda.Formatear(decimal.Zero))
}
