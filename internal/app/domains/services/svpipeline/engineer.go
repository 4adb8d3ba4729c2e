package svpipeline

import (
	"context"
	"time"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etdataset"
)

// 原始表的时间戳格式（第二种出现在部分导出的日期列）
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// engineer 特征工程：
//   - 解析两个时间戳列，解析失败记为无效哨兵而不是报错
//   - 丢弃送达早于下单的行（数据完整性破坏；不足一天的倒挂同样丢弃）
//   - delivery_lead_days = 整天数（小数部分向零截断）
//   - 投影最终列集，原始时间戳、订单 ID 与状态不再保留
func (s *PipelineService) engineer(ctx context.Context) error {
	processed := make([]*etdataset.ProcessedRecord, 0, len(s.joined))
	var dropInvalid, dropNegative int

	for _, row := range s.joined {
		purchased, okP := parseTimestamp(row.PurchasedAt)
		delivered, okD := parseTimestamp(row.DeliveredAt)
		if !okP || !okD {
			dropInvalid++
			continue
		}

		if delivered.Before(purchased) {
			dropNegative++
			continue
		}
		leadDays := int(delivered.Sub(purchased).Hours() / 24)

		processed = append(processed, &etdataset.ProcessedRecord{
			ReviewScore:      row.ReviewScore,
			Price:            row.Price,
			FreightValue:     row.FreightValue,
			CustomerState:    row.CustomerState,
			ProductCategory:  row.ProductCategory,
			ReviewComment:    row.ReviewComment,
			DeliveryLeadDays: leadDays,
		})
	}

	s.processed = processed
	s.logger.Infof(ctx, "[Pipeline] Engineered %d rows (dropped %d unparseable, %d negative lead time)",
		len(processed), dropInvalid, dropNegative)
	return nil
}

// parseTimestamp 解析时间戳文本，失败返回 ok=false（无效哨兵）
func parseTimestamp(text string) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
