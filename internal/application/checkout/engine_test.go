package checkout

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sears-pos/internal/domain"
	"github.com/tu-usuario/sears-pos/internal/domain/entity"
	"github.com/tu-usuario/sears-pos/internal/domain/repository"
)

// memStore emula la BD: los repos atados a la "tx" trabajan sobre una copia y
// el runner solo publica la copia si el callback termina sin error, igual que
// un COMMIT/ROLLBACK real.
type memStore struct {
	productos map[string]*entity.Producto
	ventas    []*entity.Venta
	detalles  []*entity.DetalleVenta

	// ventaCreateFalla fuerza el error indicado en los primeros N Create de
	// ventas (para probar rollback y reintento de folio).
	ventaCreateFalla int
	ventaCreateErr   error
	createLlamadas   int
}

func newMemStore(ps ...*entity.Producto) *memStore {
	m := &memStore{productos: make(map[string]*entity.Producto)}
	for _, p := range ps {
		cp := *p
		m.productos[p.ID] = &cp
	}
	return m
}

func (m *memStore) clonar() *memStore {
	cp := &memStore{
		productos:        make(map[string]*entity.Producto, len(m.productos)),
		ventas:           append([]*entity.Venta(nil), m.ventas...),
		detalles:         append([]*entity.DetalleVenta(nil), m.detalles...),
		ventaCreateFalla: m.ventaCreateFalla,
		ventaCreateErr:   m.ventaCreateErr,
		createLlamadas:   m.createLlamadas,
	}
	for id, p := range m.productos {
		c := *p
		cp.productos[id] = &c
	}
	return cp
}

type memProductoRepo struct{ m *memStore }

func (r *memProductoRepo) Create(*entity.Producto) error   { return nil }
func (r *memProductoRepo) Update(*entity.Producto) error   { return nil }
func (r *memProductoRepo) Delete(string) error             { return nil }
func (r *memProductoRepo) EnUso(string) (bool, error)      { return false, nil }
func (r *memProductoRepo) List(int, int) ([]*entity.Producto, error) {
	return nil, nil
}

func (r *memProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := r.m.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductoRepo) Buscar(texto string, limit int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.m.productos {
		if strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(texto)) || p.ID == texto {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductoRepo) DescontarStock(id string, cantidad int) error {
	p, ok := r.m.productos[id]
	if !ok || p.Stock < cantidad {
		disp := 0
		if ok {
			disp = p.Stock
		}
		return &domain.StockInsuficienteError{ProductoID: id, Solicitado: cantidad, Disponible: disp}
	}
	p.Stock -= cantidad
	return nil
}

type memVentaRepo struct{ m *memStore }

func (r *memVentaRepo) Create(v *entity.Venta) error {
	r.m.createLlamadas++
	if r.m.ventaCreateFalla > 0 {
		r.m.ventaCreateFalla--
		return r.m.ventaCreateErr
	}
	cp := *v
	r.m.ventas = append(r.m.ventas, &cp)
	return nil
}

func (r *memVentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	cp := *d
	r.m.detalles = append(r.m.detalles, &cp)
	return nil
}

func (r *memVentaRepo) GetByID(string) (*entity.Venta, error)              { return nil, nil }
func (r *memVentaRepo) GetDetalles(string) ([]*entity.DetalleVenta, error) { return nil, nil }
func (r *memVentaRepo) List(int, int) ([]*entity.Venta, error)             { return nil, nil }

type memTxRunner struct{ m *memStore }

func (t *memTxRunner) RunVenta(_ context.Context, fn func(
	productoRepo repository.ProductoRepository,
	ventaRepo repository.VentaRepository,
) error) error {
	copia := t.m.clonar()
	if err := fn(&memProductoRepo{m: copia}, &memVentaRepo{m: copia}); err != nil {
		// rollback: conservar solo el contador de llamadas para las aserciones
		t.m.createLlamadas = copia.createLlamadas
		t.m.ventaCreateFalla = copia.ventaCreateFalla
		return err
	}
	*t.m = *copia
	return nil
}

type stubClienteRepo struct{ clientes map[string]*entity.Cliente }

func (r *stubClienteRepo) Create(*entity.Cliente) error { return nil }
func (r *stubClienteRepo) Update(*entity.Cliente) error { return nil }
func (r *stubClienteRepo) Delete(string) error          { return nil }
func (r *stubClienteRepo) EnUso(string) (bool, error)   { return false, nil }
func (r *stubClienteRepo) List(int, int) ([]*entity.Cliente, error) {
	return nil, nil
}
func (r *stubClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.clientes[id], nil
}

type stubEmpleadoRepo struct{ empleados map[string]*entity.Empleado }

func (r *stubEmpleadoRepo) Create(*entity.Empleado) error { return nil }
func (r *stubEmpleadoRepo) Update(*entity.Empleado) error { return nil }
func (r *stubEmpleadoRepo) Delete(string) error           { return nil }
func (r *stubEmpleadoRepo) EnUso(string) (bool, error)    { return false, nil }
func (r *stubEmpleadoRepo) List(int, int) ([]*entity.Empleado, error) {
	return nil, nil
}
func (r *stubEmpleadoRepo) GetByID(id string) (*entity.Empleado, error) {
	return r.empleados[id], nil
}

func nuevoEngine(m *memStore) *Engine {
	clientes := &stubClienteRepo{clientes: map[string]*entity.Cliente{
		entity.ClienteMostradorID: {ID: entity.ClienteMostradorID, Nombre: "Público en General"},
		"cli-1":                   {ID: "cli-1", Nombre: "Ana Torres"},
	}}
	empleados := &stubEmpleadoRepo{empleados: map[string]*entity.Empleado{
		"emp-1": {ID: "emp-1", Nombre: "Luis Mendoza"},
	}}
	return NewEngine(&memProductoRepo{m: m}, clientes, empleados, &memTxRunner{m: m})
}

func TestEngine_ConfirmarVenta_PersisteYDescuentaStock(t *testing.T) {
	m := newMemStore(
		producto("a", "Producto A", 10.00, 8),
		producto("b", "Producto B", 5.00, 3),
	)
	e := nuevoEngine(m)
	ses := e.NuevaSesion()

	_, _, err := e.AgregarLinea(ses, "a", 2)
	require.NoError(t, err)
	_, _, err = e.AgregarLinea(ses, "b", 1)
	require.NoError(t, err)

	recibo, err := e.ConfirmarVenta(context.Background(), ses, "cli-1", "emp-1", entity.PagoEfectivo)
	require.NoError(t, err)

	assert.True(t, recibo.Subtotal.Equal(decimal.NewFromFloat(25.00)))
	assert.True(t, recibo.IVA.Equal(decimal.NewFromFloat(4.00)))
	assert.True(t, recibo.Total.Equal(decimal.NewFromFloat(29.00)))
	assert.Equal(t, "Ana Torres", recibo.Cliente)
	assert.Equal(t, "Luis Mendoza", recibo.Empleado)
	assert.Regexp(t, `^V-\d{8}-\d{4}$`, recibo.Folio)

	assert.Equal(t, 6, m.productos["a"].Stock, "stock de A decrementa en 2")
	assert.Equal(t, 2, m.productos["b"].Stock, "stock de B decrementa en 1")
	require.Len(t, m.ventas, 1)
	require.Len(t, m.detalles, 2)

	// suma de importes del detalle == subtotal de la venta
	suma := decimal.Zero
	for _, d := range m.detalles {
		suma = suma.Add(d.Importe)
	}
	assert.True(t, suma.Equal(m.ventas[0].Subtotal))

	// el carrito quedó vacío tras confirmar
	lineas, tot, err := e.Carrito(ses)
	require.NoError(t, err)
	assert.Empty(t, lineas)
	assert.True(t, tot.Total.IsZero())
}

func TestEngine_ConfirmarVenta_StockVivoInsuficienteNoDescuentaNada(t *testing.T) {
	m := newMemStore(
		producto("a", "Producto A", 10.00, 8),
		producto("b", "Producto B", 5.00, 3),
	)
	e := nuevoEngine(m)
	ses := e.NuevaSesion()

	_, _, err := e.AgregarLinea(ses, "a", 2)
	require.NoError(t, err)
	_, _, err = e.AgregarLinea(ses, "b", 3)
	require.NoError(t, err)

	// Otra caja vende 2 de B: el snapshot del carrito quedó rancio
	m.productos["b"].Stock = 1

	_, err = e.ConfirmarVenta(context.Background(), ses, "", "emp-1", "")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var se *domain.StockInsuficienteError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Producto B", se.Nombre, "el error nombra la línea ofensora")

	assert.Equal(t, 8, m.productos["a"].Stock, "sin descuento parcial: A intacto")
	assert.Equal(t, 1, m.productos["b"].Stock, "sin descuento parcial: B intacto")
	assert.Empty(t, m.ventas)
	assert.Empty(t, m.detalles)

	// el carrito sigue armado para reintentar
	lineas, _, err := e.Carrito(ses)
	require.NoError(t, err)
	assert.Len(t, lineas, 2)
}

func TestEngine_ConfirmarVenta_ClienteMostradorPorOmision(t *testing.T) {
	m := newMemStore(producto("a", "Producto A", 10.00, 8))
	e := nuevoEngine(m)
	ses := e.NuevaSesion()
	_, _, err := e.AgregarLinea(ses, "a", 1)
	require.NoError(t, err)

	recibo, err := e.ConfirmarVenta(context.Background(), ses, "", "emp-1", "")
	require.NoError(t, err)
	assert.Equal(t, "Público en General", recibo.Cliente)
	assert.Equal(t, entity.PagoEfectivo, recibo.MetodoPago)
	assert.Equal(t, entity.ClienteMostradorID, m.ventas[0].IDCliente)
}

func TestEngine_ConfirmarVenta_RequiereEmpleadoYCarritoNoVacio(t *testing.T) {
	m := newMemStore(producto("a", "Producto A", 10.00, 8))
	e := nuevoEngine(m)
	ses := e.NuevaSesion()

	_, err := e.ConfirmarVenta(context.Background(), ses, "", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "empleado obligatorio")

	_, err = e.ConfirmarVenta(context.Background(), ses, "", "emp-1", "")
	assert.ErrorIs(t, err, domain.ErrCarritoVacio)
}

func TestEngine_ConfirmarVenta_ReintentaFolioDuplicado(t *testing.T) {
	m := newMemStore(producto("a", "Producto A", 10.00, 8))
	m.ventaCreateFalla = 1
	m.ventaCreateErr = domain.ErrDuplicate
	e := nuevoEngine(m)
	ses := e.NuevaSesion()
	_, _, err := e.AgregarLinea(ses, "a", 1)
	require.NoError(t, err)

	recibo, err := e.ConfirmarVenta(context.Background(), ses, "", "emp-1", "")
	require.NoError(t, err, "el choque de folio se resuelve reintentando")
	assert.NotEmpty(t, recibo.Folio)
	assert.Equal(t, 2, m.createLlamadas, "un intento fallido y uno exitoso")
	assert.Equal(t, 7, m.productos["a"].Stock, "el rollback del primer intento no dejó doble descuento")
}

func TestEngine_VaciarCarrito_ExigeConfirmacion(t *testing.T) {
	m := newMemStore(producto("a", "Producto A", 10.00, 8))
	e := nuevoEngine(m)
	ses := e.NuevaSesion()
	_, _, err := e.AgregarLinea(ses, "a", 1)
	require.NoError(t, err)

	err = e.VaciarCarrito(ses, false)
	assert.ErrorIs(t, err, domain.ErrConfirmacionRequerida)
	lineas, _, _ := e.Carrito(ses)
	assert.Len(t, lineas, 1, "sin confirmación el carrito queda igual")

	require.NoError(t, e.VaciarCarrito(ses, true))
	lineas, tot, _ := e.Carrito(ses)
	assert.Empty(t, lineas)
	assert.True(t, tot.Total.IsZero())
}

func TestEngine_BuscarProductos_NoMutaElCarrito(t *testing.T) {
	m := newMemStore(producto("a", "Martillo de uña", 10.00, 8))
	e := nuevoEngine(m)
	ses := e.NuevaSesion()

	res, err := e.BuscarProductos("martillo")
	require.NoError(t, err)
	require.Len(t, res, 1)

	lineas, _, _ := e.Carrito(ses)
	assert.Empty(t, lineas)
}

func TestEngine_SesionInexistente(t *testing.T) {
	e := nuevoEngine(newMemStore())
	_, _, err := e.AgregarLinea("no-existe", "a", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
