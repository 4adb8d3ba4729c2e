package mlkit

import (
	"reflect"
	"testing"
)

func TestStratifiedSplitIsDeterministic(t *testing.T) {
	labels := []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}

	train1, test1 := StratifiedSplit(labels, 0.2, 42)
	train2, test2 := StratifiedSplit(labels, 0.2, 42)

	if !reflect.DeepEqual(train1, train2) || !reflect.DeepEqual(test1, test2) {
		t.Error("same input and seed produced different splits")
	}
}

func TestStratifiedSplitCoversAllSamples(t *testing.T) {
	labels := []int{0, 1, 0, 1, 0, 1, 0, 0, 0, 0}
	train, test := StratifiedSplit(labels, 0.3, 7)

	seen := map[int]int{}
	for _, i := range train {
		seen[i]++
	}
	for _, i := range test {
		seen[i]++
	}
	if len(seen) != len(labels) {
		t.Fatalf("split covers %d samples, want %d", len(seen), len(labels))
	}
	for i, count := range seen {
		if count != 1 {
			t.Errorf("sample %d appears %d times", i, count)
		}
	}
}

func TestStratifiedSplitKeepsBothClassesInTest(t *testing.T) {
	// 少数类即使 ratio*len 取整为 0 也至少留一个测试样本
	labels := []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}
	_, test := StratifiedSplit(labels, 0.2, 42)

	var hasPos, hasNeg bool
	for _, i := range test {
		if labels[i] == 1 {
			hasPos = true
		} else {
			hasNeg = true
		}
	}
	if !hasPos || !hasNeg {
		t.Errorf("test set misses a class: indexes %v", test)
	}
}

func TestSubset(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}, {4}}
	y := []int{0, 1, 0, 1}

	subX, subY := Subset(X, y, []int{3, 0})
	if subX[0][0] != 4 || subX[1][0] != 1 {
		t.Errorf("subX = %v", subX)
	}
	if subY[0] != 1 || subY[1] != 0 {
		t.Errorf("subY = %v", subY)
	}
}
