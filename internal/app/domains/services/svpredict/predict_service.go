package svpredict

import (
	"context"
	"sort"

	"go.uber.org/atomic"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/repo/rpmodel"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/errorx"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/mlkit"
)

// 预测标签文本
const (
	LabelSatisfied   = "Satisfied"
	LabelUnsatisfied = "Unsatisfied"
)

// Prediction 单次预测结果
type Prediction struct {
	Class int    // 0/1
	Label string // 文本标签
	Model string // 产生预测的模型名称
}

// Options 下拉选项（处理后数据集中的去重取值）
type Options struct {
	States     []string
	Categories []string
}

// loadedModel 已加载模型句柄（不可变，整体替换）
type loadedModel struct {
	artifact   *mlkit.Artifact
	classifier mlkit.Classifier
}

// PredictService 预测服务：显式持有"可能未加载"的模型句柄。
// 句柄原子替换，加载失败时服务仍可启动，预测请求返回模型不可用错误。
type PredictService struct {
	modelRepo   rpmodel.ModelRepository
	datasetRepo rpdataset.DatasetRepository
	logger      logger.Logger

	handle atomic.Value // *loadedModel 或 nil
}

// NewPredictService 创建预测服务（不加载模型，调用方决定何时 Reload）
func NewPredictService(
	modelRepo rpmodel.ModelRepository,
	datasetRepo rpdataset.DatasetRepository,
	log logger.Logger,
) *PredictService {
	return &PredictService{
		modelRepo:   modelRepo,
		datasetRepo: datasetRepo,
		logger:      log,
	}
}

// Reload 从仓储加载模型工件并原子替换句柄
func (s *PredictService) Reload(ctx context.Context) error {
	artifact, err := s.modelRepo.Load(ctx)
	if err != nil {
		return err
	}

	classifier, err := artifact.Classifier()
	if err != nil {
		return errorx.Wrap(errorx.KindValidation, "svpredict.Reload",
			"model artifact cannot be restored", err)
	}

	s.handle.Store(&loadedModel{artifact: artifact, classifier: classifier})
	s.logger.Infof(ctx, "[Predict] Model loaded: %s (weighted F1 %.4f, trained %s)",
		artifact.ModelName, artifact.WeightedF1, artifact.TrainedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// Ready 模型是否已加载
func (s *PredictService) Ready() bool {
	m, _ := s.handle.Load().(*loadedModel)
	return m != nil
}

// Predict 对单条特征做满意度预测；模型未加载返回 KindModelUnavailable
func (s *PredictService) Predict(ctx context.Context, features etdataset.Features) (*Prediction, error) {
	m, _ := s.handle.Load().(*loadedModel)
	if m == nil {
		return nil, errorx.New(errorx.KindModelUnavailable, "svpredict.Predict",
			"model is not loaded")
	}

	class := m.classifier.Predict(m.artifact.Encoder.Encode(features))

	label := LabelUnsatisfied
	if class == 1 {
		label = LabelSatisfied
	}

	return &Prediction{
		Class: class,
		Label: label,
		Model: m.artifact.ModelName,
	}, nil
}

// Options 返回处理后数据集中的州与类目去重列表（界面下拉框用）
func (s *PredictService) Options(ctx context.Context) (*Options, error) {
	records, err := s.datasetRepo.LoadProcessed(ctx)
	if err != nil {
		return nil, err
	}

	stateSet := map[string]struct{}{}
	catSet := map[string]struct{}{}
	for _, rec := range records {
		stateSet[rec.CustomerState] = struct{}{}
		catSet[rec.ProductCategory] = struct{}{}
	}

	return &Options{
		States:     sortedKeys(stateSet),
		Categories: sortedKeys(catSet),
	}, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
