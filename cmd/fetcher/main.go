package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sbilibin2017/gw-exchange-rates/internal/config"
	"github.com/sbilibin2017/gw-exchange-rates/internal/facades"
	"github.com/sbilibin2017/gw-exchange-rates/internal/handlers"
	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
	"github.com/sbilibin2017/gw-exchange-rates/internal/platform"
	"github.com/sbilibin2017/gw-exchange-rates/internal/scheduler"
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
	configPath, once := parseFlags()

	cfg, err := config.Load(configPath)
	if err == nil {
		err = cfg.RequireFetcher()
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := run(context.Background(), cfg, once); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting exchange rates fetcher\nVersion: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags returns the config file path and whether to run a single cycle and exit.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.json", "Path to configuration file")
	once := flag.Bool("once", false, "Run one fetch-and-publish cycle and exit")
	flag.Parse()
	return *c, *once
}

// newFetchPublishService wires the rates API, the Kafka publisher and the topic.
func newFetchPublishService(cfg *config.Config, writer facades.KafkaWriter) *services.FetchPublishService {
	httpClient := &http.Client{Timeout: cfg.HTTPClient.Timeout()}
	fetcher := facades.NewRatesAPIFacade(httpClient, cfg.USDAPIURL)
	publisher := services.NewPublisherService(facades.NewKafkaPublisherFacade(writer, "fetcher"))
	return services.NewFetchPublishService(fetcher, publisher, cfg.PubSubTopic)
}

// run executes one cycle with once, otherwise serves the HTTP trigger and,
// when an interval is configured, runs the cycle periodically.
func run(ctx context.Context, cfg *config.Config, once bool) error {
	if err := logger.Initialize(cfg.App.LogLevel, "fetcher"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	writer := facades.NewKafkaWriter(cfg.Kafka)
	defer writer.Close()

	svc := newFetchPublishService(cfg, writer)

	if once {
		count, err := svc.Run(ctx)
		if err != nil {
			return err
		}
		logger.Log.Infof("Published %d exchange rates to %s", count, cfg.PubSubTopic)
		return nil
	}

	if interval := cfg.Scheduler.Interval(); interval > 0 {
		sched := scheduler.New(svc, interval)
		if err := sched.Start(ctx); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer sched.Shutdown()
		logger.Log.Infof("Fetch-and-publish scheduled every %s", interval)
	}

	return platform.Serve(ctx, cfg.App.Addr(), handlers.NewFetcherRouter(svc))
}
