package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/config"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpmodel"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/services/svpredict"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/server/handlers/predict"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/server/routers"
)

var (
	configPath = flag.String("config", "./config/config.yaml", "配置文件路径")
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
	zapLogger.Infof(ctx, "API server starting: %s (env: %s)", cfg.App.Name, cfg.App.Env)

	// 3. 组装依赖
	datasetRepo := rpdataset.NewCSVRepository(
		cfg.Dataset.RawDir, cfg.Dataset.OutputDir,
		cfg.Dataset.ProcessedFile, cfg.Scraper.OutputFile,
	)
	modelRepo := rpmodel.NewJSONRepository(
		cfg.Dataset.OutputDir, cfg.Model.ArtifactFile, cfg.Model.ReportFile,
	)

	predictService := svpredict.NewPredictService(modelRepo, datasetRepo, zapLogger)

	// 模型缺失不阻止启动，/predict 返回 503 直到模型就绪
	if err := predictService.Reload(ctx); err != nil {
		zapLogger.Warnf(ctx, "Model not loaded at startup: %v", err)
	}

	predictHandler := predict.NewPredictHandler(predictService, zapLogger)
	engine := routers.SetupRoutes(predictHandler, predictService.Ready, cfg.Server.StaticDir, zapLogger)

	// 4. 创建 HTTP Server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	// 5. 启动 HTTP Server（后台 goroutine）
	serverErrChan := make(chan error, 1)
	go func() {
		zapLogger.Infof(ctx, "Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 6. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		zapLogger.Infof(ctx, "Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(ctx, server, zapLogger)
	case err := <-serverErrChan:
		zapLogger.Errorf(ctx, "HTTP server error: %v", err)
		log.Fatalf("HTTP server error: %v", err)
	}

	zapLogger.Infof(ctx, "Application stopped")
}

// gracefulShutdown 优雅停机
func gracefulShutdown(ctx context.Context, server *http.Server, zapLogger logger.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Errorf(ctx, "HTTP server shutdown error: %v", err)
	} else {
		zapLogger.Infof(ctx, "HTTP server stopped gracefully")
	}
}
