package generator

import (
	"math"
	"testing"
	"time"
)

func TestVolumesDeterministic(t *testing.T) {
	ts := time.Date(2014, 1, 1, 12, 30, 0, 0, time.UTC)
	b1, a1 := volumesAt(ts, 0.0001)
	b2, a2 := volumesAt(ts, 0.0001)
	if b1 != b2 || a1 != a2 {
		t.Fatalf("volumes not reproducible: (%v,%v) != (%v,%v)", b1, a1, b2, a2)
	}
}

func TestVolumesSpreadScaling(t *testing.T) {
	ts := time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)
	bid, ask := volumesAt(ts, 0.0001)
	if ask-bid != 10 {
		t.Errorf("ask volume must sit 10 points above bid, got %v", ask-bid)
	}
	if bid != math.Floor(bid) {
		t.Errorf("bid volume must be integral, got %v", bid)
	}
	if bid < 0 || bid >= 990 {
		t.Errorf("bid volume out of range [0, 990): %v", bid)
	}
}

func TestVolumesZeroSpread(t *testing.T) {
	ts := time.Date(2020, 6, 15, 9, 45, 30, 0, time.UTC)
	bid, ask := volumesAt(ts, 0)
	if bid != ask {
		t.Errorf("zero spread must give equal volumes, got %v and %v", bid, ask)
	}
	if bid < 0 || bid >= 1000 {
		t.Errorf("bid volume out of range [0, 1000): %v", bid)
	}
}

func TestVolumesVaryOverTime(t *testing.T) {
	// A full day of one-minute samples should not collapse to a single value.
	start := time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := make(map[float64]struct{})
	for i := 0; i < 1440; i++ {
		bid, _ := volumesAt(start.Add(time.Duration(i)*time.Minute), 0.0001)
		seen[bid] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatalf("expected varying volumes across a day, got %d distinct value(s)", len(seen))
	}
}
