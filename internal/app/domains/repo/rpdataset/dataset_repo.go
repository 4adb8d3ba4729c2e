package rpdataset

import (
	"context"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etraw"
)

// DatasetRepository 数据集仓储接口（只定义，不实现）
// 实现在 CSV 文件之上；流水线与服务层都只依赖本接口
type DatasetRepository interface {
	// LoadRawTables 加载五张原始表；任一缺失返回 KindMissingSource
	LoadRawTables(ctx context.Context) (*etraw.Tables, error)

	// SaveProcessed 原子写出处理后数据集（覆盖语义）
	SaveProcessed(ctx context.Context, records []*etdataset.ProcessedRecord) error

	// LoadProcessed 加载处理后数据集；缺失返回 KindMissingSource
	LoadProcessed(ctx context.Context) ([]*etdataset.ProcessedRecord, error)

	// SaveBooks 原子写出爬取变体的图书记录
	SaveBooks(ctx context.Context, books []etraw.Book) error

	// ProcessedPath 处理后数据集的落盘路径（日志与外部消费方使用）
	ProcessedPath() string
}
