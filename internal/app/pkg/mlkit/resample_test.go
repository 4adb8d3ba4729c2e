package mlkit

import "testing"

func TestOversampleBalancesClasses(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}, {4}}
	y := []int{1, 1, 1, 0}

	outX, outY := Oversample(X, y, 42)

	var pos, neg int
	for _, label := range outY {
		if label == 1 {
			pos++
		} else {
			neg++
		}
	}
	if pos != neg {
		t.Errorf("classes not balanced: %d pos, %d neg", pos, neg)
	}
	if len(outX) != len(outY) {
		t.Errorf("feature/label length mismatch: %d vs %d", len(outX), len(outY))
	}

	// 原切片不被修改
	if len(X) != 4 || len(y) != 4 {
		t.Error("input slices were mutated")
	}
}

func TestOversampleAlreadyBalanced(t *testing.T) {
	X := [][]float64{{1}, {2}}
	y := []int{0, 1}

	outX, outY := Oversample(X, y, 1)
	if len(outX) != 2 || len(outY) != 2 {
		t.Errorf("balanced input was resampled: %d samples", len(outX))
	}
}

func TestOversampleSingleClass(t *testing.T) {
	X := [][]float64{{1}, {2}}
	y := []int{1, 1}

	outX, _ := Oversample(X, y, 1)
	if len(outX) != 2 {
		t.Errorf("single-class input was resampled: %d samples", len(outX))
	}
}

func TestOversampleIsDeterministic(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}, {4}, {5}}
	y := []int{1, 1, 1, 1, 0}

	_, y1 := Oversample(X, y, 42)
	_, y2 := Oversample(X, y, 42)
	if len(y1) != len(y2) {
		t.Fatalf("lengths differ: %d vs %d", len(y1), len(y2))
	}
	for i := range y1 {
		if y1[i] != y2[i] {
			t.Fatal("same seed produced different resampling")
		}
	}
}
