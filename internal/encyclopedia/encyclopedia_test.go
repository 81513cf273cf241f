package encyclopedia

import "testing"

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(all))
	}

	want := []string{"ma", "macd", "kdj", "boll", "rsi"}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("entry %d: expected %s, got %s", i, id, all[i].ID)
		}
		if all[i].Difficulty < 1 || all[i].Difficulty > 3 {
			t.Errorf("entry %s: difficulty %d out of range", id, all[i].Difficulty)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"

	if All()[0].Name != "MA" {
		t.Error("expected All to return an independent copy")
	}
}

func TestByCategory(t *testing.T) {
	if got := len(ByCategory(CategoryTrend)); got != 3 {
		t.Errorf("expected 3 trend entries, got %d", got)
	}
	if got := len(ByCategory(CategoryOscillator)); got != 2 {
		t.Errorf("expected 2 oscillator entries, got %d", got)
	}
	if got := len(ByCategory(CategoryVolume)); got != 0 {
		t.Errorf("expected 0 volume entries, got %d", got)
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("MACD")
	if !ok {
		t.Fatal("expected to find macd")
	}
	if e.Name != "MACD" {
		t.Errorf("expected MACD, got %s", e.Name)
	}

	if _, ok := Lookup("obv"); ok {
		t.Error("expected obv to be missing")
	}
}
