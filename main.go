// main.go
package main

import (
	"context"
	"log"
	"os"

	"smart-parking/cmd"
	"smart-parking/internal/data/repository"
	"smart-parking/internal/data/store"
	"smart-parking/internal/wire"
	"smart-parking/pkg/database"
	"smart-parking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("lot_id", config.Lot.ID),
		zap.Int("total_slots", config.Lot.TotalSlots),
		zap.String("store_driver", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Pick the persistence backend
	var st store.Store
	switch config.Store.Driver {
	case "postgres":
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		logger.Info("Database connected successfully")

		st, err = store.NewPostgresStore(ctx, db, logger)
		if err != nil {
			logger.Fatal("Failed to initialize postgres store", zap.Error(err))
		}
	default:
		st, err = store.NewFileStore(config.Store.DataDir, logger)
		if err != nil {
			logger.Fatal("Failed to initialize file store", zap.Error(err))
		}
	}

	// Load persisted state
	snapshot, err := st.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load persisted state", zap.Error(err))
	}

	// Initialize all repositories and restore state
	repo := repository.NewRepository(config.Lot.ID, config.Lot.TotalSlots, logger)
	if err := repo.Restore(snapshot.Users, snapshot.Bookings, snapshot.Payments); err != nil {
		logger.Fatal("Failed to restore state", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repo, config, logger, os.Stdin, os.Stdout)

	if err := app.Service.Auth.SeedSampleUsers(); err != nil {
		logger.Fatal("Failed to seed sample users", zap.Error(err))
	}

	// Run the interactive console
	if err := cmd.RunConsole(ctx, app, st); err != nil {
		logger.Fatal("Console session ended with error", zap.Error(err))
	}

	logger.Info("Application stopped")
}
