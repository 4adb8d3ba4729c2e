package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/uuid"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/config"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpmodel"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/services/svtrain"
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

	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := logger.WithRunID(context.Background(), uuid.New().String())
	zapLogger.Infof(ctx, "Model trainer starting: %s (env: %s)", cfg.App.Name, cfg.App.Env)

	datasetRepo := rpdataset.NewCSVRepository(
		cfg.Dataset.RawDir, cfg.Dataset.OutputDir,
		cfg.Dataset.ProcessedFile, cfg.Scraper.OutputFile,
	)
	modelRepo := rpmodel.NewJSONRepository(
		cfg.Dataset.OutputDir, cfg.Model.ArtifactFile, cfg.Model.ReportFile,
	)

	trainer := svtrain.NewTrainService(datasetRepo, modelRepo, cfg.Model, zapLogger)
	report, err := trainer.Run(ctx)
	if err != nil {
		zapLogger.Errorf(ctx, "Training failed: %v", err)
		log.Fatalf("Training failed: %v", err)
	}

	zapLogger.Infof(ctx, "Training finished: champion %s (weighted F1 %.4f, %d train / %d test rows)",
		report.Champion, report.Report.WeightedF1, report.TrainRows, report.TestRows)
}
