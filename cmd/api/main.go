package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/sears-pos/internal/application/auth"
	"github.com/tu-usuario/sears-pos/internal/application/checkout"
	"github.com/tu-usuario/sears-pos/internal/application/usecase"
	infrapdf "github.com/tu-usuario/sears-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/sears-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/sears-pos/internal/interfaces/http"
	"github.com/tu-usuario/sears-pos/pkg/config"
	"github.com/tu-usuario/sears-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	departamentoRepo := postgres.NewDepartamentoRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	departamentoUC := usecase.NewDepartamentoUseCase(departamentoRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	empleadoUC := usecase.NewEmpleadoUseCase(empleadoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)

	ticketGenerator := infrapdf.NewTicketGenerator(cfg.App.Name)
	ventaUC := usecase.NewVentaUseCase(ventaRepo, ticketGenerator)

	checkoutEngine := checkout.NewEngine(productoRepo, clienteRepo, empleadoRepo, txRunner)

	authUC := auth.NewAuthUseCase(usuarioRepo, empleadoRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sears POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DepartamentoUC: departamentoUC,
		ProveedorUC:    proveedorUC,
		ProductoUC:     productoUC,
		EmpleadoUC:     empleadoUC,
		ClienteUC:      clienteUC,
		VentaUC:        ventaUC,
		Checkout:       checkoutEngine,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
