package request

// PredictRequest 满意度预测请求
// 运费与交付天数合法取值包含 0，使用指针区分"未传"与"传 0"
type PredictRequest struct {
	Price                *float64 `json:"price" binding:"required" example:"129.90"`
	FreightValue         *float64 `json:"freight_value" binding:"required" example:"22.50"`
	CustomerState        string   `json:"customer_state" binding:"required" example:"SP"`
	ProductCategoryName  string   `json:"product_category_name" binding:"required" example:"cama_mesa_banho"`
	DeliveryLeadDays     *int     `json:"delivery_lead_days" binding:"required" example:"10"`
	ReviewCommentMessage string   `json:"review_comment_message" example:""`
}
