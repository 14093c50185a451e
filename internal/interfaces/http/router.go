package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sears-pos/internal/application/auth"
	"github.com/tu-usuario/sears-pos/internal/application/checkout"
	"github.com/tu-usuario/sears-pos/internal/application/usecase"
	"github.com/tu-usuario/sears-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DepartamentoUC *usecase.DepartamentoUseCase
	ProveedorUC    *usecase.ProveedorUseCase
	ProductoUC     *usecase.ProductoUseCase
	EmpleadoUC     *usecase.EmpleadoUseCase
	ClienteUC      *usecase.ClienteUseCase
	VentaUC        *usecase.VentaUseCase
	Checkout       *checkout.Engine
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogos: lectura para cualquier nivel, escritura para gerente o superior
	escritura := RequireNivel(entity.NivelGerente)

	departamentos := protected.Group("/departamentos")
	departamentoHandler := NewDepartamentoHandler(deps.DepartamentoUC)
	departamentos.Get("/", departamentoHandler.List)
	departamentos.Get("/:id", departamentoHandler.GetByID)
	departamentos.Post("/", escritura, departamentoHandler.Create)
	departamentos.Put("/:id", escritura, departamentoHandler.Update)
	departamentos.Delete("/:id", escritura, departamentoHandler.Delete)

	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Post("/", escritura, proveedorHandler.Create)
	proveedores.Put("/:id", escritura, proveedorHandler.Update)
	proveedores.Delete("/:id", escritura, proveedorHandler.Delete)

	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", escritura, productoHandler.Create)
	productos.Put("/:id", escritura, productoHandler.Update)
	productos.Delete("/:id", escritura, productoHandler.Delete)

	empleados := protected.Group("/empleados")
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	empleados.Get("/", empleadoHandler.List)
	empleados.Get("/:id", empleadoHandler.GetByID)
	empleados.Post("/", escritura, empleadoHandler.Create)
	empleados.Put("/:id", escritura, empleadoHandler.Update)
	empleados.Delete("/:id", escritura, empleadoHandler.Delete)

	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Post("/", clienteHandler.Create)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", escritura, clienteHandler.Delete)

	// Caja: cualquier empleado autenticado
	caja := protected.Group("/caja")
	checkoutHandler := NewCheckoutHandler(deps.Checkout)
	caja.Get("/productos", checkoutHandler.BuscarProductos)
	caja.Post("/sesiones", checkoutHandler.AbrirSesion)
	caja.Delete("/sesiones/:id", checkoutHandler.CerrarSesion)
	caja.Get("/sesiones/:id/carrito", checkoutHandler.Carrito)
	caja.Delete("/sesiones/:id/carrito", checkoutHandler.VaciarCarrito)
	caja.Post("/sesiones/:id/lineas", checkoutHandler.AgregarLinea)
	caja.Delete("/sesiones/:id/lineas/:indice", checkoutHandler.QuitarLinea)
	caja.Post("/sesiones/:id/confirmar", checkoutHandler.ConfirmarVenta)

	// Historial de ventas (solo lectura, las ventas confirmadas son inmutables)
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Get("/:id/ticket", ventaHandler.Ticket)
}
