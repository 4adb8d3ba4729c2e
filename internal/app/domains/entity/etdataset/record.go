package etdataset

import (
	"fmt"
	"strconv"
)

// JoinedRecord 五表内连接后的宽表记录，一条对应一个（订单, 明细）对
type JoinedRecord struct {
	OrderID         string
	Status          string
	PurchasedAt     string // 原始文本时间戳
	DeliveredAt     string // 原始文本时间戳（可为空）
	ReviewScore     int
	ReviewComment   string
	Price           float64
	FreightValue    float64
	CustomerState   string
	ProductCategory string
}

// ProcessedRecord 处理后数据集的最终记录（唯一持久化的实体）
type ProcessedRecord struct {
	ReviewScore      int
	Price            float64
	FreightValue     float64
	CustomerState    string
	ProductCategory  string
	ReviewComment    string
	DeliveryLeadDays int
}

// Satisfied 满意标签：评分 >= 4 为 1，否则为 0
func (r *ProcessedRecord) Satisfied() int {
	if r.ReviewScore >= SatisfiedThreshold {
		return 1
	}
	return 0
}

// Features 服务层特征视图（去掉标签来源列）
type Features struct {
	Price            float64
	FreightValue     float64
	CustomerState    string
	ProductCategory  string
	ReviewComment    string
	DeliveryLeadDays int
}

// Features 提取记录的特征视图
func (r *ProcessedRecord) Features() Features {
	return Features{
		Price:            r.Price,
		FreightValue:     r.FreightValue,
		CustomerState:    r.CustomerState,
		ProductCategory:  r.ProductCategory,
		ReviewComment:    r.ReviewComment,
		DeliveryLeadDays: r.DeliveryLeadDays,
	}
}

// Row 按 Columns() 的顺序序列化为 CSV 行
func (r *ProcessedRecord) Row() []string {
	return []string{
		strconv.Itoa(r.ReviewScore),
		formatFloat(r.Price),
		formatFloat(r.FreightValue),
		r.CustomerState,
		r.ProductCategory,
		r.ReviewComment,
		strconv.Itoa(r.DeliveryLeadDays),
	}
}

// FromRow 按 Columns() 的顺序从 CSV 行反序列化
func FromRow(row []string) (*ProcessedRecord, error) {
	if len(row) != len(Columns()) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(Columns()), len(row))
	}

	score, err := strconv.Atoi(row[0])
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", ColReviewScore, err)
	}
	price, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", ColPrice, err)
	}
	freight, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", ColFreightValue, err)
	}
	leadDays, err := strconv.Atoi(row[6])
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", ColDeliveryLeadDays, err)
	}

	return &ProcessedRecord{
		ReviewScore:      score,
		Price:            price,
		FreightValue:     freight,
		CustomerState:    row[3],
		ProductCategory:  row[4],
		ReviewComment:    row[5],
		DeliveryLeadDays: leadDays,
	}, nil
}

// formatFloat 固定两位小数输出，保证多次运行字节一致
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
