package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/uuid"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/config"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/infra/scrape"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
)

var (
	configPath = flag.String("config", "./config/config.yaml", "配置文件路径")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}
	if cfg.Scraper.BaseURL == "" {
		log.Fatal("scraper.base_url is required")
	}

	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := logger.WithRunID(context.Background(), uuid.New().String())
	zapLogger.Infof(ctx, "Catalog scraper starting: %s", cfg.Scraper.BaseURL)

	scraper := scrape.NewScraper(cfg.Scraper.BaseURL, cfg.Scraper.PageDelay, cfg.Scraper.Timeout, zapLogger)
	books, err := scraper.Run(ctx)
	if err != nil {
		zapLogger.Errorf(ctx, "Scrape failed: %v", err)
		log.Fatalf("Scrape failed: %v", err)
	}

	datasetRepo := rpdataset.NewCSVRepository(
		cfg.Dataset.RawDir, cfg.Dataset.OutputDir,
		cfg.Dataset.ProcessedFile, cfg.Scraper.OutputFile,
	)
	if err := datasetRepo.SaveBooks(ctx, books); err != nil {
		zapLogger.Errorf(ctx, "Save books failed: %v", err)
		log.Fatalf("Save books failed: %v", err)
	}

	zapLogger.Infof(ctx, "Scrape finished: %d books saved", len(books))
}
