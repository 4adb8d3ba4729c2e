package predict

import (
	"github.com/gin-gonic/gin"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/apimodel/response"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/errorx"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/ginx"
)

// Options 界面下拉选项接口：返回处理后数据集中的州与类目去重列表
// GET /api/v1/options
func (h *PredictHandler) Options(c *gin.Context) {
	options, err := h.predictService.Options(c.Request.Context())
	if err != nil {
		if errorx.IsKind(err, errorx.KindMissingSource) {
			ginx.NotFound(c, "processed dataset not found, run the data pipeline first")
			return
		}
		h.logger.Errorf(c.Request.Context(), "load options failed: %v", err)
		ginx.InternalError(c, "failed to load options")
		return
	}

	ginx.Success(c, response.FromOptions(options))
}
