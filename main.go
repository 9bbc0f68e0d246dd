package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"placement-dashboard/app/repository"
	"placement-dashboard/config"
	"placement-dashboard/database"
	FiberApp "placement-dashboard/fiber"
	"placement-dashboard/logger"
	"placement-dashboard/route"
)

func main() {
	// 1. Load .env and configuration
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Invalid logging configuration: %v", err)
	}
	defer zl.Sync()

	// 2. Placement source
	ctx := context.Background()
	repo, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		zl.Fatal("failed to open placement source", zap.Error(err))
	}
	defer closeSource()

	// 3. Setup Fiber App and routes
	app := FiberApp.SetupFiber(zl)
	route.SetupRoutes(app, cfg, repo, zl)

	// 4. Start server
	go func() {
		zl.Info("server running",
			zap.String("port", cfg.Port),
			zap.String("source", repo.Source()),
			zap.Bool("auth", cfg.AuthEnabled()))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Error("server stopped", zap.Error(err))
		}
	}()

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
	}
}

// openSource builds the repository for PLACEMENT_SOURCE along with a func
// releasing its connections.
func openSource(ctx context.Context, cfg config.Config) (repository.PlacementRepository, func(), error) {
	switch cfg.Source {
	case config.SourceCSV:
		return repository.NewCSVRepository(cfg.CSVPath), func() {}, nil

	case config.SourcePostgres, config.SourceSQLite:
		driver := database.DriverPostgres
		if cfg.Source == config.SourceSQLite {
			driver = database.DriverSQLite
		}
		db, err := database.ConnectSQL(ctx, driver, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSQLRepository(db, driver, cfg.DBTable), closeDB(db), nil

	case config.SourceMongo:
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMongoRepository(db, cfg.MongoCollection), disconnect(client), nil
	}
	return nil, nil, fmt.Errorf("unknown placement source %q", cfg.Source)
}

func closeDB(db *sql.DB) func() {
	return func() { _ = db.Close() }
}

func disconnect(client *mongo.Client) func() {
	return func() { _ = client.Disconnect(context.Background()) }
}
