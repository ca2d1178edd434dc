package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sbilibin2017/gw-exchange-rates/internal/config"
	"github.com/sbilibin2017/gw-exchange-rates/internal/handlers"
	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/platform"
	"github.com/sbilibin2017/gw-exchange-rates/internal/repositories"
	"github.com/sbilibin2017/gw-exchange-rates/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-exchange-rates API
// @version 1.0.0
// @description Read and append exchange rate quotes stored in the warehouse
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting exchange rates API\nVersion: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.json", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger and the warehouse connection, then serves the query API
// until a shutdown signal is received.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, "api"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	db, err := platform.ConnectPostgres(ctx, cfg)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()

	repo := repositories.NewExchangeRateRepository(db)
	if cfg.Warehouse.AutoCreate {
		if err := repo.EnsureTable(ctx, cfg.Table()); err != nil {
			return fmt.Errorf("failed to create warehouse table: %w", err)
		}
	}

	svc := services.NewExchangeRateService(cfg.Table(), repo, services.NewWriterService(repo))
	router := handlers.NewAPIRouter(svc, fmt.Sprintf("http://%s/swagger/doc.json", cfg.App.Addr()))

	return platform.Serve(ctx, cfg.App.Addr(), router)
}
