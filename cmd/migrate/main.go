// migrate crea el esquema de la base de datos y carga los datos iniciales:
// agencias, catálogo de artículos, matriz de stock a cero y el usuario
// administrador.
//
// Uso: go run ./cmd/migrate
// La conexión y las credenciales del admin se leen del entorno (DATABASE_URL
// o DB_*, ADMIN_EMAIL, ADMIN_PASSWORD).
package main

import (
	"context"
	"os"
	"time"

	"github.com/Abirbissou/stock-IT/internal/infrastructure/postgres"
	"github.com/Abirbissou/stock-IT/pkg/config"
	"github.com/Abirbissou/stock-IT/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	adminEmail := envOr("ADMIN_EMAIL", "abir@publicis.com")
	adminPassword := envOr("ADMIN_PASSWORD", "admin123")

	if err := postgres.Seed(ctx, pool, adminEmail, adminPassword); err != nil {
		log.Fatal().Err(err).Msg("cargar datos iniciales")
	}
	log.Info().Str("admin", adminEmail).Msg("datos iniciales cargados")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
