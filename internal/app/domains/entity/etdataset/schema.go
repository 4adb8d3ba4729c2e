package etdataset

// 处理后数据集的列定义：流水线输出与服务层输入共用同一份 Schema，
// 避免两边各自维护列名导致隐式耦合。
const (
	ColReviewScore      = "review_score"
	ColPrice            = "price"
	ColFreightValue     = "freight_value"
	ColCustomerState    = "customer_state"
	ColProductCategory  = "product_category_name"
	ColReviewComment    = "review_comment_message"
	ColDeliveryLeadDays = "delivery_lead_days"
)

// SatisfiedThreshold 满意标签阈值：评分 >= 4 视为满意（固定切分点）
const SatisfiedThreshold = 4

// Columns 返回持久化列及其顺序
func Columns() []string {
	return []string{
		ColReviewScore,
		ColPrice,
		ColFreightValue,
		ColCustomerState,
		ColProductCategory,
		ColReviewComment,
		ColDeliveryLeadDays,
	}
}

// FeatureColumns 返回服务层特征列（持久化列去掉标签来源列）
func FeatureColumns() []string {
	return []string{
		ColPrice,
		ColFreightValue,
		ColCustomerState,
		ColProductCategory,
		ColReviewComment,
		ColDeliveryLeadDays,
	}
}
