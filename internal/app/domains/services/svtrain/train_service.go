package svtrain

import (
	"context"
	"fmt"
	"time"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/config"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpmodel"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/mlkit"
)

// CandidateResult 单个候选模型的成绩
type CandidateResult struct {
	Model      string  `json:"model"`
	WeightedF1 float64 `json:"weighted_f1"`
}

// TrainingReport 训练评估报告（写入 output 目录）
type TrainingReport struct {
	TrainedAt  time.Time         `json:"trained_at"`
	TrainRows  int               `json:"train_rows"`
	TestRows   int               `json:"test_rows"`
	Candidates []CandidateResult `json:"candidates"`
	Champion   string            `json:"champion"`
	Report     *mlkit.Report     `json:"champion_report"`
}

// TrainService 模型训练服务：读处理后数据集，训练候选模型，
// 按加权 F1 选冠军并持久化工件
type TrainService struct {
	datasetRepo rpdataset.DatasetRepository
	modelRepo   rpmodel.ModelRepository
	cfg         config.ModelConfig
	logger      logger.Logger
}

// NewTrainService 创建训练服务
func NewTrainService(
	datasetRepo rpdataset.DatasetRepository,
	modelRepo rpmodel.ModelRepository,
	cfg config.ModelConfig,
	log logger.Logger,
) *TrainService {
	return &TrainService{
		datasetRepo: datasetRepo,
		modelRepo:   modelRepo,
		cfg:         cfg,
		logger:      log,
	}
}

// Run 执行完整训练流程
func (s *TrainService) Run(ctx context.Context) (*TrainingReport, error) {
	records, err := s.datasetRepo.LoadProcessed(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("processed dataset is empty")
	}
	s.logger.Infof(ctx, "[Train] Loaded %d processed records", len(records))

	// 满意标签：评分 >= 4 为 1（固定切分点）
	feats := make([]etdataset.Features, len(records))
	labels := make([]int, len(records))
	for i, rec := range records {
		feats[i] = rec.Features()
		labels[i] = rec.Satisfied()
	}

	trainIdx, testIdx := mlkit.StratifiedSplit(labels, s.cfg.TestRatio, s.cfg.Seed)
	s.logger.Infof(ctx, "[Train] Split: %d train, %d test", len(trainIdx), len(testIdx))

	// 编码器只在训练集上拟合，避免测试集信息泄漏
	trainFeats := make([]etdataset.Features, len(trainIdx))
	for i, j := range trainIdx {
		trainFeats[i] = feats[j]
	}
	encoder := mlkit.FitEncoder(trainFeats, s.cfg.MaxTextFeatures)
	s.logger.Infof(ctx, "[Train] Encoder fitted: %d states, %d categories, %d text terms, dim=%d",
		len(encoder.States), len(encoder.Categories), len(encoder.Vocab), encoder.Dim())

	X := encoder.EncodeAll(feats)
	trainX, trainY := mlkit.Subset(X, labels, trainIdx)
	testX, testY := mlkit.Subset(X, labels, testIdx)

	// 只对训练集做少数类过采样
	trainX, trainY = mlkit.Oversample(trainX, trainY, s.cfg.Seed)

	candidates := []mlkit.Classifier{
		mlkit.NewLogisticRegression(),
		mlkit.NewGaussianNB(),
		mlkit.NewRandomForest(s.cfg.Seed),
	}

	report := &TrainingReport{
		TrainedAt: time.Now().UTC(),
		TrainRows: len(trainX),
		TestRows:  len(testX),
	}

	var champion mlkit.Classifier
	var championF1 float64

	for _, candidate := range candidates {
		s.logger.Infof(ctx, "[Train] Training %s", candidate.Name())
		if err := candidate.Fit(trainX, trainY); err != nil {
			return nil, fmt.Errorf("fit %s: %w", candidate.Name(), err)
		}

		f1, err := mlkit.WeightedF1(testY, mlkit.PredictAll(candidate, testX))
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", candidate.Name(), err)
		}
		s.logger.Infof(ctx, "[Train] %s weighted F1: %.4f", candidate.Name(), f1)

		report.Candidates = append(report.Candidates, CandidateResult{
			Model:      candidate.Name(),
			WeightedF1: f1,
		})

		// 并列时保留先训练的候选，保证结果可复现
		if champion == nil || f1 > championF1 {
			champion, championF1 = candidate, f1
		}
	}

	report.Champion = champion.Name()
	champReport, err := mlkit.Evaluate(testY, mlkit.PredictAll(champion, testX))
	if err != nil {
		return nil, fmt.Errorf("champion report: %w", err)
	}
	report.Report = champReport

	s.logger.Infof(ctx, "[Train] Champion: %s (weighted F1 %.4f)", champion.Name(), championF1)

	artifact, err := mlkit.NewArtifact(champion, championF1, encoder, report.TrainedAt)
	if err != nil {
		return nil, err
	}
	if err := s.modelRepo.Save(ctx, artifact); err != nil {
		return nil, err
	}
	if err := s.modelRepo.SaveReport(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}
