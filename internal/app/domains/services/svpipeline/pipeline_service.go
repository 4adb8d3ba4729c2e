package svpipeline

import (
	"context"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etraw"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
)

// Options 流水线可选行为
type Options struct {
	// DropDuplicates 状态过滤前去除完全重复的连接行
	DropDuplicates bool
}

// RunSummary 单次运行的行数统计
type RunSummary struct {
	JoinedRows    int `json:"joined_rows"`
	FilteredRows  int `json:"filtered_rows"`
	ProcessedRows int `json:"processed_rows"`
	Columns       int `json:"columns"`
}

// PipelineService 数据清洗流水线：加载 → 连接 → 过滤 → 特征工程 → 持久化。
// 单线程顺序执行，每个阶段完全物化输出后才进入下一阶段。
type PipelineService struct {
	repo   rpdataset.DatasetRepository
	opts   Options
	logger logger.Logger

	// 阶段间的中间状态（一次 Run 的生命周期内有效）
	tables    *etraw.Tables
	joined    []*etdataset.JoinedRecord
	processed []*etdataset.ProcessedRecord
	summary   RunSummary
}

// NewPipelineService 创建流水线服务
func NewPipelineService(repo rpdataset.DatasetRepository, opts Options, log logger.Logger) *PipelineService {
	return &PipelineService{
		repo:   repo,
		opts:   opts,
		logger: log,
	}
}

// Run 执行完整流水线，返回行数统计
func (s *PipelineService) Run(ctx context.Context) (*RunSummary, error) {
	s.tables = nil
	s.joined = nil
	s.processed = nil
	s.summary = RunSummary{}

	chain := NewStageChain(s.logger,
		Stage{Name: "load", Fn: s.load},
		Stage{Name: "join", Fn: s.join},
		Stage{Name: "filter", Fn: s.filter},
		Stage{Name: "engineer", Fn: s.engineer},
		Stage{Name: "persist", Fn: s.persist},
	)

	if err := chain.Run(ctx); err != nil {
		return nil, err
	}

	summary := s.summary
	return &summary, nil
}

// load 加载五张原始表
func (s *PipelineService) load(ctx context.Context) error {
	tables, err := s.repo.LoadRawTables(ctx)
	if err != nil {
		return err
	}
	s.tables = tables

	s.logger.Infof(ctx, "[Pipeline] Loaded raw tables: %d orders, %d reviews, %d items, %d products, %d customers",
		len(tables.Orders), len(tables.Reviews), len(tables.OrderItems),
		len(tables.Products), len(tables.Customers))
	return nil
}

// persist 原子写出最终数据集并输出行列统计
func (s *PipelineService) persist(ctx context.Context) error {
	if err := s.repo.SaveProcessed(ctx, s.processed); err != nil {
		return err
	}

	s.summary.ProcessedRows = len(s.processed)
	s.summary.Columns = len(etdataset.Columns())

	s.logger.Infof(ctx, "[Pipeline] Persisted %d records with %d columns to %s",
		s.summary.ProcessedRows, s.summary.Columns, s.repo.ProcessedPath())
	return nil
}
