package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sears-pos/internal/domain"
	"github.com/tu-usuario/sears-pos/internal/domain/entity"
)

func producto(id, nombre string, precio float64, stock int) *entity.Producto {
	return &entity.Producto{
		ID:            id,
		Nombre:        nombre,
		PrecioPublico: decimal.NewFromFloat(precio),
		Stock:         stock,
	}
}

func TestCarrito_AgregarFusionaCantidades(t *testing.T) {
	var c Carrito
	p := producto("p1", "Martillo", 10, 10)

	require.NoError(t, c.Agregar(p, 2))
	require.NoError(t, c.Agregar(p, 3))

	lineas := c.Lineas()
	require.Len(t, lineas, 1, "agregar el mismo producto no debe duplicar la línea")
	assert.Equal(t, 5, lineas[0].Cantidad, "las cantidades se suman en el merge")
}

func TestCarrito_AgregarRechazaSobregiroYNoMuta(t *testing.T) {
	var c Carrito
	p := producto("p1", "Martillo", 10, 5)

	require.NoError(t, c.Agregar(p, 4))
	err := c.Agregar(p, 2) // 4 + 2 > 5

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	var se *domain.StockInsuficienteError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 6, se.Solicitado)
	assert.Equal(t, 5, se.Disponible)
	assert.Equal(t, 4, c.Lineas()[0].Cantidad, "el carrito queda sin cambios tras el rechazo")
}

func TestCarrito_PrecioCapturadoEnPrimerAgregado(t *testing.T) {
	var c Carrito
	p := producto("p1", "Martillo", 10, 10)
	require.NoError(t, c.Agregar(p, 1))

	// El producto sube de precio antes del merge; la línea conserva el original
	p.PrecioPublico = decimal.NewFromFloat(12.50)
	require.NoError(t, c.Agregar(p, 1))

	linea := c.Lineas()[0]
	assert.True(t, linea.PrecioUnitario.Equal(decimal.NewFromInt(10)),
		"el precio unitario se fija al agregar por primera vez")
	assert.True(t, linea.Subtotal().Equal(decimal.NewFromInt(20)))
}

func TestCarrito_QuitarFueraDeRangoEsNoOp(t *testing.T) {
	var c Carrito
	require.NoError(t, c.Agregar(producto("p1", "Martillo", 10, 10), 1))

	c.Quitar(-1)
	c.Quitar(5)
	assert.Len(t, c.Lineas(), 1)

	c.Quitar(0)
	assert.True(t, c.Vacio())
}

func TestCarrito_TotalesConIVA16(t *testing.T) {
	var c Carrito
	require.NoError(t, c.Agregar(producto("a", "Producto A", 10.00, 10), 2))
	require.NoError(t, c.Agregar(producto("b", "Producto B", 5.00, 10), 1))

	tot := c.CalcularTotales()
	assert.True(t, tot.Subtotal.Equal(decimal.NewFromFloat(25.00)), "subtotal: %s", tot.Subtotal)
	assert.True(t, tot.IVA.Equal(decimal.NewFromFloat(4.00)), "iva: %s", tot.IVA)
	assert.True(t, tot.Total.Equal(decimal.NewFromFloat(29.00)), "total: %s", tot.Total)
}

func TestCarrito_TotalesSiempreConsistentes(t *testing.T) {
	var c Carrito
	require.NoError(t, c.Agregar(producto("a", "A", 3.33, 100), 7))
	require.NoError(t, c.Agregar(producto("b", "B", 19.99, 100), 3))
	c.Quitar(0)

	tot := c.CalcularTotales()
	assert.True(t, tot.Total.Equal(tot.Subtotal.Add(tot.IVA)), "total == subtotal + iva")
	assert.True(t, tot.IVA.Equal(tot.Subtotal.Mul(TasaIVA).Round(2)), "iva == subtotal * 0.16")
}

func TestCarrito_VacioTieneTotalesCero(t *testing.T) {
	var c Carrito
	tot := c.CalcularTotales()
	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.IVA.IsZero())
	assert.True(t, tot.Total.IsZero())
}
