package mlkit

import (
	"math/rand"
	"sort"
)

// StratifiedSplit 按标签分层切分样本下标为训练/测试两组。
// 同一份输入与种子产出完全一致的切分。
func StratifiedSplit(labels []int, testRatio float64, seed int64) (trainIdx []int, testIdx []int) {
	rng := rand.New(rand.NewSource(seed))

	byClass := map[int][]int{}
	for i, y := range labels {
		byClass[y] = append(byClass[y], i)
	}

	classes := make([]int, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	for _, c := range classes {
		idx := byClass[c]
		rng.Shuffle(len(idx), func(i, j int) {
			idx[i], idx[j] = idx[j], idx[i]
		})

		nTest := int(float64(len(idx)) * testRatio)
		if nTest == 0 && len(idx) > 1 {
			nTest = 1
		}

		testIdx = append(testIdx, idx[:nTest]...)
		trainIdx = append(trainIdx, idx[nTest:]...)
	}

	sort.Ints(trainIdx)
	sort.Ints(testIdx)
	return trainIdx, testIdx
}

// Subset 取下标子集
func Subset(X [][]float64, y []int, idx []int) ([][]float64, []int) {
	subX := make([][]float64, len(idx))
	subY := make([]int, len(idx))
	for i, j := range idx {
		subX[i] = X[j]
		subY[i] = y[j]
	}
	return subX, subY
}
