// Command import загружает полигоны районов из ESRI shapefile (WGS84) в таблицу
// NEIGHBORHOOD_TABLE. Повторный запуск обновляет строки по id.
//
//	go run ./cmd/import --file data/Boston_Neighborhood_Boundaries.shp
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/neighborhood-gateway/internal/config"
	"github.com/neighborhood-gateway/internal/importer"
	"github.com/neighborhood-gateway/internal/pkg/logger"
	"github.com/neighborhood-gateway/internal/repository/postgres"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	exitCode := 0
	defer func() {
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	defaults := importer.DefaultOptions()

	flags := pflag.NewFlagSet("import", pflag.ExitOnError)
	file := flags.StringP("file", "f", "", "path to the .shp file (the .dbf must sit next to it)")
	idField := flags.String("id-field", defaults.IDField, "dbf attribute used as id; empty uses the record number")
	nameField := flags.String("name-field", defaults.NameField, "dbf attribute used as name")
	descField := flags.String("description-field", defaults.DescriptionField, "dbf attribute used as description")
	table := flags.String("table", "", "target table, overrides NEIGHBORHOOD_TABLE")
	_ = flags.Parse(os.Args[1:])

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: import --file <path.shp> [flags]")
		flags.PrintDefaults()
		os.Exit(2)
	}

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *table != "" {
		cfg.Database.NeighborhoodTable = *table
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	// 3. Connect to PostGIS
	db, err := postgres.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	repo, err := postgres.NewNeighborhoodRepository(db, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize neighborhood repository", zap.Error(err))
	}

	// 4. Import; Ctrl+C rolls back the open transaction
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	written, err := importer.New(repo, log).Run(ctx, *file, importer.Options{
		IDField:          *idField,
		NameField:        *nameField,
		DescriptionField: *descField,
	})
	if err != nil {
		log.Error("Import failed", zap.String("file", *file), zap.Error(err))
		exitCode = 1
		return
	}

	log.Info("Import finished",
		zap.String("file", *file),
		zap.String("table", cfg.Database.NeighborhoodTable),
		zap.Int("written", written),
	)
}
