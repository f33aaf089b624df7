package glider

import (
	"testing"
)

func TestSimulateDeterministic(t *testing.T) {
	a, err := Simulate(VariantStandard, 80, 24, 99, 3000, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	b, err := Simulate(VariantStandard, 80, 24, 99, 3000, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if a != b {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
	if a.Ticks == 0 || a.Distance <= 0 {
		t.Errorf("nothing simulated: %+v", a)
	}
	if a.LivesLeft+a.Collisions != 10 {
		t.Errorf("lives %d + collisions %d != 10", a.LivesLeft, a.Collisions)
	}
}

func TestSimulateVariantsDiffer(t *testing.T) {
	std, err := Simulate(VariantStandard, 80, 24, 5, 500, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	classic, err := Simulate(VariantClassic, 80, 24, 5, 500, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if std.Hash == classic.Hash {
		t.Error("variants produced identical runs")
	}
}

func TestSimulateStopsAtTickLimit(t *testing.T) {
	r, err := Simulate(VariantStandard, 80, 24, 1, 10, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if r.Ticks != 10 || r.GameOver {
		t.Errorf("report = %+v", r)
	}
}
