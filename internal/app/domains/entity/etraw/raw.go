package etraw

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusCreated     OrderStatus = "created"
	OrderStatusApproved    OrderStatus = "approved"
	OrderStatusInvoiced    OrderStatus = "invoiced"
	OrderStatusProcessing  OrderStatus = "processing"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusDelivered   OrderStatus = "delivered"
	OrderStatusCanceled    OrderStatus = "canceled"
	OrderStatusUnavailable OrderStatus = "unavailable"
)

// Order 订单原始记录
// 时间戳保留原始文本，在特征工程阶段统一解析
type Order struct {
	ID          string      // 订单ID
	CustomerID  string      // 客户ID
	Status      OrderStatus // 订单状态
	PurchasedAt string      // 下单时间（原始文本）
	DeliveredAt string      // 送达时间（原始文本，可为空）
}

// Review 评价原始记录
type Review struct {
	ID      string // 评价ID
	OrderID string // 订单ID
	Score   int    // 评分 1-5
	Comment string // 评价文本（可为空）
}

// OrderItem 订单明细原始记录
type OrderItem struct {
	OrderID      string  // 订单ID
	ProductID    string  // 商品ID
	Price        float64 // 商品价格
	FreightValue float64 // 运费
}

// Product 商品原始记录
type Product struct {
	ID           string // 商品ID
	CategoryName string // 商品类目（可为空）
}

// Customer 客户原始记录
type Customer struct {
	ID    string // 客户ID
	State string // 客户所在州
}

// Tables 五张原始表的集合（流水线的输入）
type Tables struct {
	Orders     []Order
	Reviews    []Review
	OrderItems []OrderItem
	Products   []Product
	Customers  []Customer
}
