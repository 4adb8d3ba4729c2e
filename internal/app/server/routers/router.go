package routers

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/server/handlers/predict"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	predictHandler *predict.PredictHandler,
	modelReady func() bool,
	staticDir string,
	log logger.Logger,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler())

	// 静态前端（表单界面）
	r.StaticFile("/", filepath.Join(staticDir, "index.html"))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":       "ok",
			"service":      "csat-apiserver",
			"model_loaded": modelReady(),
		})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/options", predictHandler.Options)
		v1.POST("/predict", predictHandler.Predict)
	}

	return r
}
