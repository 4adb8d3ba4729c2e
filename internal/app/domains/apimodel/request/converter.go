package request

import (
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etdataset"
)

// ToFeatures 请求 DTO 转换为领域特征视图
func (r *PredictRequest) ToFeatures() etdataset.Features {
	return etdataset.Features{
		Price:            *r.Price,
		FreightValue:     *r.FreightValue,
		CustomerState:    r.CustomerState,
		ProductCategory:  r.ProductCategoryName,
		ReviewComment:    r.ReviewCommentMessage,
		DeliveryLeadDays: *r.DeliveryLeadDays,
	}
}
