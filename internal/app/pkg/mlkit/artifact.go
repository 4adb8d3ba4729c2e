package mlkit

import (
	"fmt"
	"time"
)

// Artifact 冠军模型工件：编码器参数 + 模型参数 + 训练元信息，
// 序列化为 JSON 持久化，服务层反序列化后重建分类器。
type Artifact struct {
	ModelName  string    `json:"model_name"`
	TrainedAt  time.Time `json:"trained_at"`
	WeightedF1 float64   `json:"weighted_f1"`
	Encoder    *Encoder  `json:"encoder"`

	Logistic *LogisticRegression `json:"logistic,omitempty"`
	Bayes    *GaussianNB         `json:"bayes,omitempty"`
	Forest   *RandomForest       `json:"forest,omitempty"`
}

// NewArtifact 由冠军分类器构建工件
func NewArtifact(champion Classifier, f1 float64, encoder *Encoder, trainedAt time.Time) (*Artifact, error) {
	a := &Artifact{
		ModelName:  champion.Name(),
		TrainedAt:  trainedAt,
		WeightedF1: f1,
		Encoder:    encoder,
	}

	switch c := champion.(type) {
	case *LogisticRegression:
		a.Logistic = c
	case *GaussianNB:
		a.Bayes = c
	case *RandomForest:
		a.Forest = c
	default:
		return nil, fmt.Errorf("unsupported classifier type %T", champion)
	}

	return a, nil
}

// Classifier 从工件重建分类器
func (a *Artifact) Classifier() (Classifier, error) {
	switch {
	case a.Logistic != nil:
		return a.Logistic, nil
	case a.Bayes != nil:
		return a.Bayes, nil
	case a.Forest != nil:
		return a.Forest, nil
	default:
		return nil, fmt.Errorf("artifact %q carries no model parameters", a.ModelName)
	}
}
