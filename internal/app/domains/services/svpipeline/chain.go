package svpipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
)

// StageFunc 阶段处理函数类型
type StageFunc func(ctx context.Context) error

// Stage 具名流水线阶段
type Stage struct {
	Name string
	Fn   StageFunc
}

// StageChain 阶段函数链
// 任一阶段返回 error 则立即停止，后续阶段不执行
type StageChain struct {
	stages []Stage
	logger logger.Logger
}

// NewStageChain 创建阶段函数链
func NewStageChain(log logger.Logger, stages ...Stage) *StageChain {
	return &StageChain{stages: stages, logger: log}
}

// Run 顺序执行全部阶段
func (c *StageChain) Run(ctx context.Context) error {
	for _, stage := range c.stages {
		stageCtx := logger.WithStage(ctx, stage.Name)
		start := time.Now()

		if err := stage.Fn(stageCtx); err != nil {
			return fmt.Errorf("stage %s failed: %w", stage.Name, err)
		}

		c.logger.Infof(stageCtx, "[Pipeline] Stage %s done in %v", stage.Name, time.Since(start))
	}
	return nil
}
