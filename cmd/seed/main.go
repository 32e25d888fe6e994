// seed prepara una base PostgreSQL: aplica el esquema y carga el dataset de demostración.
//
// Uso: go run ./cmd/seed [--migrate] [--seed] [--print-schema]
// La conexión se toma de DATABASE_URL o DB_HOST, DB_PORT, etc. (igual que la API).
// --print-schema escribe el DDL en stdout y termina sin conectarse.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger/pkg/config"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

func main() {
	migrate := pflag.Bool("migrate", true, "aplicar el esquema antes de cargar datos")
	seed := pflag.Bool("seed", true, "cargar el dataset de demostración si la base está vacía")
	printSchema := pflag.Bool("print-schema", false, "imprimir el DDL y salir")
	timeout := pflag.Duration("timeout", 30*time.Second, "plazo máximo de la operación")
	pflag.Parse()

	if *printSchema {
		fmt.Print(postgres.SchemaSQL())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if *migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
			os.Exit(1)
		}
		log.Info().Msg("esquema aplicado")
	}

	if *seed {
		txRunner := postgres.NewTxRunner(pool, time.Duration(cfg.DB.TxTimeout)*time.Second)
		seeded, err := inventory.NewSeedUseCase(txRunner, log.Zerolog()).Run(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cargar datos: %v\n", err)
			os.Exit(1)
		}
		if !seeded {
			log.Info().Msg("la base ya tiene datos, no se cargó el dataset")
		}
	}
}
