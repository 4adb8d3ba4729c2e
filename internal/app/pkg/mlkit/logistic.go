package mlkit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LogisticRegression 逻辑回归（批量梯度下降 + L2 正则 + 类别均衡样本权重）
type LogisticRegression struct {
	LearningRate float64 `json:"learning_rate"`
	Epochs       int     `json:"epochs"`
	L2           float64 `json:"l2"`

	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// NewLogisticRegression 创建默认超参的逻辑回归
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		LearningRate: 0.1,
		Epochs:       300,
		L2:           1e-4,
	}
}

// Name 模型名称
func (l *LogisticRegression) Name() string { return "logistic_regression" }

// Fit 批量梯度下降拟合
func (l *LogisticRegression) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 {
		return fmt.Errorf("empty training set")
	}
	d := len(X[0])

	// 类别均衡权重 n/(2*n_c)，少数类样本梯度贡献更大
	var nPos int
	for _, label := range y {
		if label == 1 {
			nPos++
		}
	}
	nNeg := n - nPos
	if nPos == 0 || nNeg == 0 {
		return fmt.Errorf("training set must contain both classes")
	}
	wPos := float64(n) / (2 * float64(nPos))
	wNeg := float64(n) / (2 * float64(nNeg))

	flat := make([]float64, 0, n*d)
	for _, row := range X {
		flat = append(flat, row...)
	}
	A := mat.NewDense(n, d, flat)

	w := mat.NewVecDense(d, nil)
	scores := mat.NewVecDense(n, nil)
	residual := mat.NewVecDense(n, nil)
	grad := mat.NewVecDense(d, nil)

	var bias float64

	for epoch := 0; epoch < l.Epochs; epoch++ {
		scores.MulVec(A, w)

		var biasGrad float64
		for i := 0; i < n; i++ {
			p := sigmoid(scores.AtVec(i) + bias)
			sw := wNeg
			if y[i] == 1 {
				sw = wPos
			}
			res := (p - float64(y[i])) * sw
			residual.SetVec(i, res)
			biasGrad += res
		}

		grad.MulVec(A.T(), residual)
		grad.ScaleVec(1/float64(n), grad)
		grad.AddScaledVec(grad, l.L2, w)

		w.AddScaledVec(w, -l.LearningRate, grad)
		bias -= l.LearningRate * biasGrad / float64(n)
	}

	l.Weights = make([]float64, d)
	for i := 0; i < d; i++ {
		l.Weights[i] = w.AtVec(i)
	}
	l.Bias = bias

	return nil
}

// Predict 预测类别
func (l *LogisticRegression) Predict(x []float64) int {
	if l.PredictProba(x) >= 0.5 {
		return 1
	}
	return 0
}

// PredictProba 预测正类概率
func (l *LogisticRegression) PredictProba(x []float64) float64 {
	score := l.Bias
	for i, w := range l.Weights {
		if i < len(x) {
			score += w * x[i]
		}
	}
	return sigmoid(score)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
