package mlkit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// GaussianNB 高斯朴素贝叶斯：每个类别下各特征拟合一维高斯分布
type GaussianNB struct {
	// ClassLogPrior[c] 类别先验的对数
	ClassLogPrior [2]float64 `json:"class_log_prior"`
	// Mean[c][j] / Variance[c][j] 类别 c 下特征 j 的均值与方差
	Mean     [2][]float64 `json:"mean"`
	Variance [2][]float64 `json:"variance"`
}

// NewGaussianNB 创建高斯朴素贝叶斯
func NewGaussianNB() *GaussianNB {
	return &GaussianNB{}
}

// Name 模型名称
func (g *GaussianNB) Name() string { return "gaussian_naive_bayes" }

// Fit 拟合各类别的特征分布
func (g *GaussianNB) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 {
		return fmt.Errorf("empty training set")
	}
	d := len(X[0])

	var counts [2]int
	for _, label := range y {
		if label < 0 || label > 1 {
			return fmt.Errorf("labels must be 0 or 1, got %d", label)
		}
		counts[label]++
	}
	if counts[0] == 0 || counts[1] == 0 {
		return fmt.Errorf("training set must contain both classes")
	}

	col := make([]float64, 0, n)
	var maxVar float64

	for c := 0; c < 2; c++ {
		g.ClassLogPrior[c] = math.Log(float64(counts[c]) / float64(n))
		g.Mean[c] = make([]float64, d)
		g.Variance[c] = make([]float64, d)

		for j := 0; j < d; j++ {
			col = col[:0]
			for i, row := range X {
				if y[i] == c {
					col = append(col, row[j])
				}
			}
			mean, variance := stat.MeanVariance(col, nil)
			if math.IsNaN(variance) {
				variance = 0
			}
			g.Mean[c][j] = mean
			g.Variance[c][j] = variance
			if variance > maxVar {
				maxVar = variance
			}
		}
	}

	// 方差平滑，防止常量特征导致零方差
	eps := 1e-9 * maxVar
	if eps == 0 {
		eps = 1e-9
	}
	for c := 0; c < 2; c++ {
		for j := range g.Variance[c] {
			g.Variance[c][j] += eps
		}
	}

	return nil
}

// Predict 按联合对数似然取最大类别
func (g *GaussianNB) Predict(x []float64) int {
	best, bestScore := 0, math.Inf(-1)
	for c := 0; c < 2; c++ {
		score := g.ClassLogPrior[c]
		for j, v := range x {
			if j >= len(g.Mean[c]) {
				break
			}
			variance := g.Variance[c][j]
			diff := v - g.Mean[c][j]
			score += -0.5*math.Log(2*math.Pi*variance) - diff*diff/(2*variance)
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}
