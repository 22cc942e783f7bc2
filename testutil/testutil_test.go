package testutil

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRNGReset(t *testing.T) {
	r := NewRNG(7)
	first := r.Uint64()

	r.Reset()
	if got := r.Uint64(); got != first {
		t.Fatalf("Reset did not replay sequence: %d vs %d", got, first)
	}
}

func TestFingerprints(t *testing.T) {
	r := NewRNG(1)
	fps := r.Fingerprints(32)
	if len(fps) != 32 {
		t.Fatalf("expected 32 fingerprints, got %d", len(fps))
	}
}

func TestFillNormal(t *testing.T) {
	r := NewRNG(1)
	dst := make([]float64, 1000)
	r.FillNormal(dst, 1.0)

	var mean float64
	for _, v := range dst {
		mean += v
	}
	mean /= float64(len(dst))

	if mean > 0.2 || mean < -0.2 {
		t.Errorf("sample mean too far from zero: %v", mean)
	}
}
