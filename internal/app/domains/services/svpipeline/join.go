package svpipeline

import (
	"context"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etraw"
)

// join 五表内连接：Orders⋈Reviews⋈OrderItems⋈Products⋈Customers。
// 任一外键缺失的行被丢弃而不是补空。订单明细按源文件顺序遍历、
// 同一订单的多条评价按源文件顺序展开，保证多次运行输出行序一致。
func (s *PipelineService) join(ctx context.Context) error {
	ordersByID := make(map[string]*etraw.Order, len(s.tables.Orders))
	for i := range s.tables.Orders {
		ordersByID[s.tables.Orders[i].ID] = &s.tables.Orders[i]
	}

	reviewsByOrder := make(map[string][]*etraw.Review, len(s.tables.Reviews))
	for i := range s.tables.Reviews {
		rv := &s.tables.Reviews[i]
		reviewsByOrder[rv.OrderID] = append(reviewsByOrder[rv.OrderID], rv)
	}

	productsByID := make(map[string]*etraw.Product, len(s.tables.Products))
	for i := range s.tables.Products {
		productsByID[s.tables.Products[i].ID] = &s.tables.Products[i]
	}

	customersByID := make(map[string]*etraw.Customer, len(s.tables.Customers))
	for i := range s.tables.Customers {
		customersByID[s.tables.Customers[i].ID] = &s.tables.Customers[i]
	}

	var joined []*etdataset.JoinedRecord
	for i := range s.tables.OrderItems {
		item := &s.tables.OrderItems[i]

		order, ok := ordersByID[item.OrderID]
		if !ok {
			continue
		}
		reviews := reviewsByOrder[item.OrderID]
		if len(reviews) == 0 {
			continue
		}
		product, ok := productsByID[item.ProductID]
		if !ok {
			continue
		}
		customer, ok := customersByID[order.CustomerID]
		if !ok {
			continue
		}

		// 同一订单的重复评价合法地产生多条连接行（不在此处去重）
		for _, rv := range reviews {
			joined = append(joined, &etdataset.JoinedRecord{
				OrderID:         order.ID,
				Status:          string(order.Status),
				PurchasedAt:     order.PurchasedAt,
				DeliveredAt:     order.DeliveredAt,
				ReviewScore:     rv.Score,
				ReviewComment:   rv.Comment,
				Price:           item.Price,
				FreightValue:    item.FreightValue,
				CustomerState:   customer.State,
				ProductCategory: product.CategoryName,
			})
		}
	}

	s.joined = joined
	s.summary.JoinedRows = len(joined)
	s.logger.Infof(ctx, "[Pipeline] Joined %d rows from %d order items",
		len(joined), len(s.tables.OrderItems))
	return nil
}
