package predict

import (
	"github.com/gin-gonic/gin"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/apimodel/request"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/apimodel/response"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/errorx"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/ginx"
)

// Predict 满意度预测接口
// POST /api/v1/predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var req request.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	prediction, err := h.predictService.Predict(c.Request.Context(), req.ToFeatures())
	if err != nil {
		if errorx.IsKind(err, errorx.KindModelUnavailable) {
			ginx.ServiceUnavailable(c, "model is not available")
			return
		}
		h.logger.Errorf(c.Request.Context(), "predict failed: %v", err)
		ginx.InternalError(c, "prediction failed")
		return
	}

	ginx.Success(c, response.FromPrediction(prediction))
}
