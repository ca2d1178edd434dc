package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gw-exchange-rates/internal/config"
	"github.com/sbilibin2017/gw-exchange-rates/internal/facades"
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

func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err == nil {
		err = cfg.RequirePersister()
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting exchange rates persister\nVersion: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.json", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects to the warehouse and the optional dedup cache, then consumes the topic
// and serves the push endpoint until a shutdown signal or a consumer failure.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, "persister"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()

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

	var cache services.ExchangeRateDedupCache
	if cfg.Redis.Enabled {
		rdb, err := platform.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewExchangeRateCacheRepository(rdb, cfg.Redis.TTL())
	}

	subscriber := services.NewSubscriberService(
		cfg.Table(),
		services.NewDedupService(repo, cache),
		services.NewWriterService(repo),
	)

	reader := facades.NewKafkaReader(cfg.Kafka, cfg.PubSubTopic)
	defer reader.Close()
	consumer := facades.NewKafkaConsumerFacade(reader, subscriber)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Infof("Consuming topic %s as group %s", cfg.PubSubTopic, cfg.Kafka.GroupID)
		return consumer.Consume(gctx)
	})
	g.Go(func() error {
		return platform.Serve(gctx, cfg.App.Addr(), handlers.NewPersisterRouter(subscriber))
	})

	return g.Wait()
}
