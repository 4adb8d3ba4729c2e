package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/uuid"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/config"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpmodel"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/services/svpipeline"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/services/svtrain"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/infra/acquire"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
)

var (
	configPath = flag.String("config", "./config/config.yaml", "配置文件路径")
	download   = flag.Bool("download", false, "运行前先下载数据集压缩包")
	withTrain  = flag.Bool("train", false, "数据流水线完成后继续执行模型训练")
)

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化 Logger
	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := logger.WithRunID(context.Background(), uuid.New().String())
	zapLogger.Infof(ctx, "Data pipeline starting: %s (env: %s)", cfg.App.Name, cfg.App.Env)

	// 3. 可选：下载数据集
	if *download {
		if cfg.Dataset.ArchiveURL == "" {
			zapLogger.Errorf(ctx, "dataset.archive_url is required with -download")
			log.Fatal("dataset.archive_url is required with -download")
		}
		downloader := acquire.NewDownloader(zapLogger)
		if err := downloader.Fetch(ctx, cfg.Dataset.ArchiveURL, cfg.Dataset.RawDir); err != nil {
			zapLogger.Errorf(ctx, "Dataset acquisition failed: %v", err)
			log.Fatalf("Dataset acquisition failed: %v", err)
		}
	}

	// 4. 执行数据清洗流水线
	datasetRepo := rpdataset.NewCSVRepository(
		cfg.Dataset.RawDir, cfg.Dataset.OutputDir,
		cfg.Dataset.ProcessedFile, cfg.Scraper.OutputFile,
	)

	pipeline := svpipeline.NewPipelineService(
		datasetRepo,
		svpipeline.Options{DropDuplicates: cfg.Dataset.DropDuplicates},
		zapLogger,
	)

	summary, err := pipeline.Run(ctx)
	if err != nil {
		zapLogger.Errorf(ctx, "Pipeline failed: %v", err)
		log.Fatalf("Pipeline failed: %v", err)
	}

	zapLogger.Infof(ctx, "Pipeline finished: %d joined -> %d filtered -> %d persisted (%d columns)",
		summary.JoinedRows, summary.FilteredRows, summary.ProcessedRows, summary.Columns)

	// 5. 可选：继续模型训练
	if *withTrain {
		modelRepo := rpmodel.NewJSONRepository(
			cfg.Dataset.OutputDir, cfg.Model.ArtifactFile, cfg.Model.ReportFile,
		)
		trainer := svtrain.NewTrainService(datasetRepo, modelRepo, cfg.Model, zapLogger)
		report, err := trainer.Run(ctx)
		if err != nil {
			zapLogger.Errorf(ctx, "Training failed: %v", err)
			log.Fatalf("Training failed: %v", err)
		}
		zapLogger.Infof(ctx, "Training finished: champion %s (weighted F1 %.4f)",
			report.Champion, report.Report.WeightedF1)
	}
}
