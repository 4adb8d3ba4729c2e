package response

import (
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/services/svpredict"
)

// FromPrediction 从领域预测结果转换为响应 DTO
func FromPrediction(p *svpredict.Prediction) *PredictResponse {
	return &PredictResponse{
		PredictedClass: p.Class,
		Prediction:     p.Label,
		Model:          p.Model,
	}
}

// FromOptions 从领域选项转换为响应 DTO
func FromOptions(o *svpredict.Options) *OptionsResponse {
	return &OptionsResponse{
		States:     o.States,
		Categories: o.Categories,
	}
}
