package svpipeline

import (
	"context"
	"fmt"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etraw"
)

// filter 行过滤与空值剔除：
//  1. （可选）去除完全重复的连接行
//  2. 只保留 order_status == "delivered" 的行（精确匹配，不改写状态）
//  3. 必填字段非空：送达时间与商品类目；评价文本缺失补空串而不是丢行
//
// 每行独立判定，丢弃一行不影响其他行。
func (s *PipelineService) filter(ctx context.Context) error {
	rows := s.joined
	if s.opts.DropDuplicates {
		before := len(rows)
		rows = dedupe(rows)
		s.logger.Infof(ctx, "[Pipeline] Dropped %d duplicate rows", before-len(rows))
	}

	kept := rows[:0]
	var dropStatus, dropNull int
	for _, row := range rows {
		if row.Status != string(etraw.OrderStatusDelivered) {
			dropStatus++
			continue
		}
		if row.DeliveredAt == "" || row.ProductCategory == "" {
			dropNull++
			continue
		}
		kept = append(kept, row)
	}

	s.joined = kept
	s.summary.FilteredRows = len(kept)
	s.logger.Infof(ctx, "[Pipeline] Filter kept %d rows (dropped %d by status, %d by nulls)",
		len(kept), dropStatus, dropNull)
	return nil
}

// dedupe 去除完全重复的行，保留首次出现，维持原有行序
func dedupe(rows []*etdataset.JoinedRecord) []*etdataset.JoinedRecord {
	seen := make(map[string]struct{}, len(rows))
	out := rows[:0]
	for _, row := range rows {
		key := fmt.Sprintf("%s|%s|%s|%s|%d|%s|%.2f|%.2f|%s|%s",
			row.OrderID, row.Status, row.PurchasedAt, row.DeliveredAt,
			row.ReviewScore, row.ReviewComment, row.Price, row.FreightValue,
			row.CustomerState, row.ProductCategory)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out
}
