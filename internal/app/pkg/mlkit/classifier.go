package mlkit

// Classifier 二分类器统一接口（候选模型都实现它）
type Classifier interface {
	// Name 模型名称（报告与冠军选择时展示）
	Name() string
	// Fit 在编码后的训练集上拟合
	Fit(X [][]float64, y []int) error
	// Predict 预测单条样本的类别（0/1）
	Predict(x []float64) int
}

// PredictAll 批量预测
func PredictAll(c Classifier, X [][]float64) []int {
	preds := make([]int, len(X))
	for i, x := range X {
		preds[i] = c.Predict(x)
	}
	return preds
}
