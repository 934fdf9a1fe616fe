package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"hespress_harvester/internal/config"
	"hespress_harvester/internal/publisher"
	"hespress_harvester/internal/scheduler"
	"hespress_harvester/internal/service"
	"hespress_harvester/internal/source/hespress"
	"hespress_harvester/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	startPage := flag.Int("start", 0, "override crawl start page")
	endPage := flag.Int("end", 0, "override crawl end page")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *startPage > 0 {
		cfg.Crawl.StartPage = *startPage
	}
	if *endPage > 0 {
		cfg.Crawl.EndPage = *endPage
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	articleStore := postgres.NewArticleStore(db)

	// Nothing can be durably recorded without the table, so this one is fatal.
	if err := articleStore.EnsureSchema(context.Background()); err != nil {
		logger.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}
	logger.Info("articles table ensured to exist")

	// Publishing is optional; an empty URL disables it.
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	src := hespress.New(hespress.Config{
		BaseURL:   cfg.Crawl.BaseURL,
		Timeout:   cfg.Crawl.Timeout,
		UserAgent: cfg.Crawl.UserAgent,
	}, logger)

	crawlService := service.NewCrawlService(src, articleStore, pub, logger, cfg.Crawl)

	sched := scheduler.NewScheduler(crawlService, cfg.Crawl.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting harvester",
		"start_page", cfg.Crawl.StartPage,
		"end_page", cfg.Crawl.EndPage,
		"interval", cfg.Crawl.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
