package mlkit

import "fmt"

// ClassMetrics 单个类别的评估指标
type ClassMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Report 二分类评估报告
type Report struct {
	// Confusion[实际][预测]，类别 0/1
	Confusion  [2][2]int               `json:"confusion_matrix"`
	Classes    map[string]ClassMetrics `json:"classes"`
	Accuracy   float64                 `json:"accuracy"`
	WeightedF1 float64                 `json:"weighted_f1"`
}

// Evaluate 计算二分类评估报告（标签取值 0/1）
func Evaluate(yTrue, yPred []int) (*Report, error) {
	if len(yTrue) != len(yPred) {
		return nil, fmt.Errorf("label length mismatch: %d vs %d", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return nil, fmt.Errorf("empty evaluation set")
	}

	r := &Report{Classes: make(map[string]ClassMetrics, 2)}

	correct := 0
	for i := range yTrue {
		t, p := yTrue[i], yPred[i]
		if t < 0 || t > 1 || p < 0 || p > 1 {
			return nil, fmt.Errorf("labels must be 0 or 1, got true=%d pred=%d", t, p)
		}
		r.Confusion[t][p]++
		if t == p {
			correct++
		}
	}
	r.Accuracy = float64(correct) / float64(len(yTrue))

	total := float64(len(yTrue))
	for c := 0; c < 2; c++ {
		tp := float64(r.Confusion[c][c])
		fn := float64(r.Confusion[c][1-c])
		fp := float64(r.Confusion[1-c][c])

		m := ClassMetrics{Support: r.Confusion[c][0] + r.Confusion[c][1]}
		if tp+fp > 0 {
			m.Precision = tp / (tp + fp)
		}
		if tp+fn > 0 {
			m.Recall = tp / (tp + fn)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		r.Classes[fmt.Sprintf("%d", c)] = m

		// 按支持度加权的 F1，是选冠军模型的指标
		r.WeightedF1 += m.F1 * float64(m.Support) / total
	}

	return r, nil
}

// WeightedF1 只取加权 F1 分值
func WeightedF1(yTrue, yPred []int) (float64, error) {
	r, err := Evaluate(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return r.WeightedF1, nil
}
