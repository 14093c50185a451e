package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/sears-pos/internal/domain"
	"github.com/tu-usuario/sears-pos/internal/domain/entity"
	"github.com/tu-usuario/sears-pos/internal/domain/repository"
)

// maxReintentosFolio acota los reintentos cuando el folio aleatorio choca con
// uno ya registrado ese día.
const maxReintentosFolio = 5

// limiteBusqueda tope de resultados de BuscarProductos.
const limiteBusqueda = 20

// Engine es el motor de cobro. Administra sesiones, cada una dueña de un
// carrito propio; toda operación sobre una sesión toma su mutex, por lo que
// las mutaciones del carrito son seriales aunque el shell sea concurrente.
type Engine struct {
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	empleadoRepo repository.EmpleadoRepository
	txRunner     TxRunner

	mu       sync.RWMutex
	sesiones map[string]*sesion
}

type sesion struct {
	mu      sync.Mutex
	carrito Carrito
}

// NewEngine construye el motor con sus dependencias.
func NewEngine(
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	empleadoRepo repository.EmpleadoRepository,
	txRunner TxRunner,
) *Engine {
	return &Engine{
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		empleadoRepo: empleadoRepo,
		txRunner:     txRunner,
		sesiones:     make(map[string]*sesion),
	}
}

// NuevaSesion abre una sesión de cobro con carrito vacío y devuelve su id.
func (e *Engine) NuevaSesion() string {
	id := uuid.New().String()
	e.mu.Lock()
	e.sesiones[id] = &sesion{}
	e.mu.Unlock()
	return id
}

// CerrarSesion descarta la sesión y su carrito sin confirmar nada.
func (e *Engine) CerrarSesion(id string) {
	e.mu.Lock()
	delete(e.sesiones, id)
	e.mu.Unlock()
}

func (e *Engine) sesion(id string) (*sesion, error) {
	e.mu.RLock()
	s, ok := e.sesiones[id]
	e.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// BuscarProductos busca candidatos por subcadena del nombre (sin distinguir
// mayúsculas) o coincidencia exacta de id / código de barras. No toca el carrito.
func (e *Engine) BuscarProductos(texto string) ([]*entity.Producto, error) {
	if texto == "" {
		return nil, domain.ErrInvalidInput
	}
	return e.productoRepo.Buscar(texto, limiteBusqueda)
}

// AgregarLinea agrega cantidad del producto al carrito de la sesión, leyendo
// el stock vigente del producto. Devuelve las líneas y totales actualizados.
func (e *Engine) AgregarLinea(sesionID, productoID string, cantidad int) ([]Linea, Totales, error) {
	s, err := e.sesion(sesionID)
	if err != nil {
		return nil, Totales{}, err
	}
	if productoID == "" || cantidad <= 0 {
		return nil, Totales{}, domain.ErrInvalidInput
	}
	p, err := e.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, Totales{}, err
	}
	if p == nil {
		return nil, Totales{}, domain.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.carrito.Agregar(p, cantidad); err != nil {
		return nil, Totales{}, err
	}
	return s.carrito.Lineas(), s.carrito.CalcularTotales(), nil
}

// QuitarLinea elimina la línea en la posición dada; fuera de rango es no-op.
func (e *Engine) QuitarLinea(sesionID string, indice int) ([]Linea, Totales, error) {
	s, err := e.sesion(sesionID)
	if err != nil {
		return nil, Totales{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carrito.Quitar(indice)
	return s.carrito.Lineas(), s.carrito.CalcularTotales(), nil
}

// VaciarCarrito descarta todas las líneas. Si el carrito tiene líneas exige
// confirmado=true; sin confirmación el carrito queda intacto.
func (e *Engine) VaciarCarrito(sesionID string, confirmado bool) error {
	s, err := e.sesion(sesionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.carrito.Vacio() && !confirmado {
		return domain.ErrConfirmacionRequerida
	}
	s.carrito.Vaciar()
	return nil
}

// Carrito devuelve las líneas y totales vigentes de la sesión.
func (e *Engine) Carrito(sesionID string) ([]Linea, Totales, error) {
	s, err := e.sesion(sesionID)
	if err != nil {
		return nil, Totales{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carrito.Lineas(), s.carrito.CalcularTotales(), nil
}

// ConfirmarVenta persiste la venta del carrito en una sola transacción:
// descuento condicional de stock por línea (stock = stock - n WHERE stock >= n),
// cabecera y detalle. Si cualquier paso falla se revierte todo y el carrito
// queda intacto para reintentar. Con éxito vacía el carrito y devuelve el
// recibo. ClienteID vacío aplica el cliente mostrador.
func (e *Engine) ConfirmarVenta(ctx context.Context, sesionID, clienteID, empleadoID, metodoPago string) (*Recibo, error) {
	s, err := e.sesion(sesionID)
	if err != nil {
		return nil, err
	}
	if empleadoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if clienteID == "" {
		clienteID = entity.ClienteMostradorID
	}
	if metodoPago == "" {
		metodoPago = entity.PagoEfectivo
	}

	empleado, err := e.empleadoRepo.GetByID(empleadoID)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, domain.ErrNotFound
	}
	cliente, err := e.clienteRepo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.carrito.Vacio() {
		return nil, domain.ErrCarritoVacio
	}

	lineas := s.carrito.Lineas()
	totales := s.carrito.CalcularTotales()
	ahora := time.Now()
	venta := &entity.Venta{
		ID:         uuid.New().String(),
		IDCliente:  clienteID,
		IDEmpleado: empleadoID,
		Fecha:      ahora,
		Subtotal:   totales.Subtotal,
		IVA:        totales.IVA,
		Total:      totales.Total,
		Estado:     entity.VentaPagada,
		MetodoPago: metodoPago,
		CreadoEn:   ahora,
	}

	for intento := 0; intento < maxReintentosFolio; intento++ {
		venta.Folio = NuevoFolio(ahora)
		err = e.txRunner.RunVenta(ctx, func(
			productoRepo repository.ProductoRepository,
			ventaRepo repository.VentaRepository,
		) error {
			// Revalidación contra stock vivo: el descuento condicional falla
			// si otra caja vendió el mismo producto desde que se armó el carrito.
			for _, l := range lineas {
				if err := productoRepo.DescontarStock(l.ProductoID, l.Cantidad); err != nil {
					var se *domain.StockInsuficienteError
					if errors.As(err, &se) && se.Nombre == "" {
						se.Nombre = l.Nombre
					}
					return err
				}
			}
			if err := ventaRepo.Create(venta); err != nil {
				return err
			}
			for _, l := range lineas {
				det := &entity.DetalleVenta{
					IDVenta:        venta.ID,
					IDProducto:     l.ProductoID,
					Cantidad:       l.Cantidad,
					PrecioUnitario: l.PrecioUnitario,
					Importe:        l.Subtotal(),
				}
				if err := ventaRepo.CreateDetalle(det); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// Folio repetido: reintentar con sufijo nuevo
	}
	if err != nil {
		return nil, err
	}

	recibo := &Recibo{
		VentaID:    venta.ID,
		Folio:      venta.Folio,
		Fecha:      venta.Fecha,
		Cliente:    cliente.Nombre,
		Empleado:   empleado.Nombre,
		MetodoPago: venta.MetodoPago,
		Subtotal:   venta.Subtotal,
		IVA:        venta.IVA,
		Total:      venta.Total,
	}
	for _, l := range lineas {
		recibo.Lineas = append(recibo.Lineas, ReciboLinea{
			Cantidad:       l.Cantidad,
			Nombre:         l.Nombre,
			PrecioUnitario: l.PrecioUnitario,
			Importe:        l.Subtotal(),
		})
	}
	s.carrito.Vaciar()
	return recibo, nil
}
