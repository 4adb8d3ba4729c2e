package mlkit

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	yTrue := []int{0, 0, 1, 1}
	yPred := []int{0, 1, 1, 1}

	r, err := Evaluate(yTrue, yPred)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if r.Confusion != [2][2]int{{1, 1}, {0, 2}} {
		t.Errorf("confusion = %v", r.Confusion)
	}
	if math.Abs(r.Accuracy-0.75) > 1e-12 {
		t.Errorf("accuracy = %v, want 0.75", r.Accuracy)
	}

	c0 := r.Classes["0"]
	if math.Abs(c0.Precision-1) > 1e-12 || math.Abs(c0.Recall-0.5) > 1e-12 {
		t.Errorf("class 0 metrics = %+v", c0)
	}
	if c0.Support != 2 {
		t.Errorf("class 0 support = %d", c0.Support)
	}

	c1 := r.Classes["1"]
	if math.Abs(c1.Recall-1) > 1e-12 {
		t.Errorf("class 1 recall = %v", c1.Recall)
	}

	// weighted F1 = (2/3 * 2 + 0.8 * 2) / 4
	want := (2.0/3.0*2 + 0.8*2) / 4
	if math.Abs(r.WeightedF1-want) > 1e-12 {
		t.Errorf("weighted F1 = %v, want %v", r.WeightedF1, want)
	}
}

func TestEvaluatePerfectPrediction(t *testing.T) {
	y := []int{0, 1, 0, 1}
	r, err := Evaluate(y, y)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if r.Accuracy != 1 || math.Abs(r.WeightedF1-1) > 1e-12 {
		t.Errorf("accuracy = %v, weighted F1 = %v", r.Accuracy, r.WeightedF1)
	}
}

func TestEvaluateRejectsBadInput(t *testing.T) {
	if _, err := Evaluate([]int{0, 1}, []int{0}); err == nil {
		t.Error("expected error for length mismatch")
	}
	if _, err := Evaluate(nil, nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := Evaluate([]int{2}, []int{0}); err == nil {
		t.Error("expected error for non-binary label")
	}
}

func TestEvaluateZeroDivisionGuards(t *testing.T) {
	// 全部预测为 1：类 0 的 precision/recall 为 0 而不是 NaN
	r, err := Evaluate([]int{0, 0, 1}, []int{1, 1, 1})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	c0 := r.Classes["0"]
	if math.IsNaN(c0.Precision) || math.IsNaN(c0.Recall) || math.IsNaN(c0.F1) {
		t.Errorf("class 0 metrics contain NaN: %+v", c0)
	}
}
