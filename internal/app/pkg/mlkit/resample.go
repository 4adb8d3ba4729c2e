package mlkit

import "math/rand"

// Oversample 随机过采样少数类直到两类样本数持平，只在训练集上使用，
// 避免测试集信息泄漏。返回新切片，不修改输入。
func Oversample(X [][]float64, y []int, seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))

	var pos, neg []int
	for i, label := range y {
		if label == 1 {
			pos = append(pos, i)
		} else {
			neg = append(neg, i)
		}
	}

	minority, majority := pos, neg
	if len(pos) > len(neg) {
		minority, majority = neg, pos
	}
	if len(minority) == 0 || len(minority) == len(majority) {
		return X, y
	}

	outX := make([][]float64, len(X), len(majority)*2)
	outY := make([]int, len(y), len(majority)*2)
	copy(outX, X)
	copy(outY, y)

	for i := len(minority); i < len(majority); i++ {
		j := minority[rng.Intn(len(minority))]
		outX = append(outX, X[j])
		outY = append(outY, y[j])
	}

	return outX, outY
}
