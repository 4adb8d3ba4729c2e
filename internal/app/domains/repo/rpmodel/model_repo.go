package rpmodel

import (
	"context"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/mlkit"
)

// ModelRepository 模型工件仓储接口（只定义，不实现）
type ModelRepository interface {
	// Save 原子写出冠军模型工件（覆盖语义）
	Save(ctx context.Context, artifact *mlkit.Artifact) error

	// Load 加载冠军模型工件；缺失返回 KindMissingSource
	Load(ctx context.Context) (*mlkit.Artifact, error)

	// SaveReport 写出训练评估报告
	SaveReport(ctx context.Context, report interface{}) error
}
