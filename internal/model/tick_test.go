package model

import "testing"

func TestParsePattern(t *testing.T) {
	for _, s := range []string{"none", "wave", "curve", "zigzag", "random"} {
		p, err := ParsePattern(s)
		if err != nil {
			t.Fatalf("ParsePattern(%q): %v", s, err)
		}
		if string(p) != s {
			t.Errorf("ParsePattern(%q) = %q", s, p)
		}
	}
	if _, err := ParsePattern("sawtooth"); err == nil {
		t.Fatalf("expected error for unknown pattern")
	}
}

func TestDeterministic(t *testing.T) {
	if PatternRandom.Deterministic() {
		t.Errorf("random walk must not report deterministic")
	}
	for _, p := range []Pattern{PatternNone, PatternWave, PatternCurve, PatternZigzag} {
		if !p.Deterministic() {
			t.Errorf("%s must report deterministic", p)
		}
	}
}
