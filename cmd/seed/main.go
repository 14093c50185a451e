package main

import (
	"context"

	"github.com/tu-usuario/sears-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/sears-pos/internal/seed"
	"github.com/tu-usuario/sears-pos/pkg/config"
	"github.com/tu-usuario/sears-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repos := seed.Repos{
		Departamentos: postgres.NewDepartamentoRepository(pool),
		Proveedores:   postgres.NewProveedorRepository(pool),
		Productos:     postgres.NewProductoRepository(pool),
		Empleados:     postgres.NewEmpleadoRepository(pool),
		Clientes:      postgres.NewClienteRepository(pool),
		Usuarios:      postgres.NewUsuarioRepository(pool),
	}
	if err := seed.Demo(repos); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos de demostración")
	}

	log.Info().Msg("datos de demostración listos (admin@sears-pos.local / admin1234)")
}
