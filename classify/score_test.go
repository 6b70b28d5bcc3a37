package classify

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestWeighted(t *testing.T) {
	cases := []struct {
		sig  Signals
		want float64
	}{
		{Signals{1, 0, 1}, 1.0},
		{Signals{0, 0, 0}, 0.3},
		{Signals{1, 1, 0}, 0.5},
		{Signals{0, 1, 1}, 0.2},
		{Signals{0, 1, 0}, 0.0},
	}

	a := Weighted(DefaultWeights)
	for _, c := range cases {
		if got := a.Score(c.sig); math.Abs(got-c.want) > eps {
			t.Errorf("Score(%+v) = %v, want %v", c.sig, got, c.want)
		}
	}
}

func TestWeightedNotNormalised(t *testing.T) {
	a := Weighted(Weights{1, 1, 1})
	if got := a.Score(Signals{1, 0, 1}); math.Abs(got-3) > eps {
		t.Fatalf("got %v, want 3", got)
	}
}

func TestUniform(t *testing.T) {
	a := Uniform()
	if got := a.Score(Signals{1, 0, 1}); math.Abs(got-1) > eps {
		t.Fatalf("got %v, want 1", got)
	}

	if got := a.Score(Signals{0, 1, 1}); math.Abs(got-1.0/3) > eps {
		t.Fatalf("got %v, want 1/3", got)
	}
}

func TestLabel(t *testing.T) {
	if Label(0.5) != LabelAsking {
		t.Error("threshold is inclusive")
	}

	if Label(0.49) != LabelShared {
		t.Error("below threshold must be shared")
	}

	if Label(1.0) != LabelAsking {
		t.Error("1.0 must be asking")
	}
}

func TestParseWeights(t *testing.T) {
	w, err := ParseWeights("0.5, 0.3,0.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w != DefaultWeights {
		t.Fatalf("got %v, want %v", w, DefaultWeights)
	}

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c"} {
		if _, err := ParseWeights(bad); err == nil {
			t.Errorf("ParseWeights(%q): expected error", bad)
		}
	}

	if Weighted(w).Name() != "weighted(0.5,0.3,0.2)" {
		t.Errorf("unexpected name %q", Weighted(w).Name())
	}
}
