package etdataset

import (
	"reflect"
	"testing"
)

func TestSatisfied(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{1, 0},
		{3, 0},
		{4, 1},
		{5, 1},
	}
	for _, c := range cases {
		rec := ProcessedRecord{ReviewScore: c.score}
		if got := rec.Satisfied(); got != c.want {
			t.Errorf("Satisfied(score=%d) = %d, want %d", c.score, got, c.want)
		}
	}
}

func TestRowFromRowRoundTrip(t *testing.T) {
	rec := &ProcessedRecord{
		ReviewScore:      5,
		Price:            129.9,
		FreightValue:     22.5,
		CustomerState:    "SP",
		ProductCategory:  "cama_mesa_banho",
		ReviewComment:    "chegou antes do prazo",
		DeliveryLeadDays: 10,
	}

	row := rec.Row()
	want := []string{"5", "129.90", "22.50", "SP", "cama_mesa_banho", "chegou antes do prazo", "10"}
	if !reflect.DeepEqual(row, want) {
		t.Fatalf("Row() = %v, want %v", row, want)
	}

	back, err := FromRow(row)
	if err != nil {
		t.Fatalf("FromRow: %v", err)
	}
	if !reflect.DeepEqual(back, rec) {
		t.Errorf("round trip mismatch: %+v vs %+v", back, rec)
	}
}

func TestRowUsesFixedDecimals(t *testing.T) {
	rec := &ProcessedRecord{Price: 10, FreightValue: 3.456}
	row := rec.Row()
	if row[1] != "10.00" {
		t.Errorf("price formatted as %q, want 10.00", row[1])
	}
	if row[2] != "3.46" {
		t.Errorf("freight formatted as %q, want 3.46", row[2])
	}
}

func TestFromRowErrors(t *testing.T) {
	if _, err := FromRow([]string{"5", "1.0"}); err == nil {
		t.Error("expected error for short row")
	}
	if _, err := FromRow([]string{"bad", "1.00", "2.00", "SP", "cat", "", "3"}); err == nil {
		t.Error("expected error for non-numeric score")
	}
	if _, err := FromRow([]string{"5", "1.00", "2.00", "SP", "cat", "", "x"}); err == nil {
		t.Error("expected error for non-numeric lead days")
	}
}

func TestColumnsMatchRowOrder(t *testing.T) {
	if len(Columns()) != len((&ProcessedRecord{}).Row()) {
		t.Fatalf("Columns() and Row() lengths differ: %d vs %d",
			len(Columns()), len((&ProcessedRecord{}).Row()))
	}
	if Columns()[0] != ColReviewScore || Columns()[6] != ColDeliveryLeadDays {
		t.Errorf("unexpected column order: %v", Columns())
	}
}

func TestFeatureColumnsExcludeScore(t *testing.T) {
	for _, col := range FeatureColumns() {
		if col == ColReviewScore {
			t.Fatal("feature columns must not contain the label source column")
		}
	}
}
