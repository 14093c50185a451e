package main

import (
	"context"

	"github.com/tu-usuario/sears-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/sears-pos/internal/migrate"
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

	if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	log.Info().Msg("migraciones aplicadas")
}
