package model

import (
	"fmt"
	"time"
)

// Pattern selects the price-path shape a series follows.
type Pattern string

const (
	PatternNone   Pattern = "none"
	PatternWave   Pattern = "wave"
	PatternCurve  Pattern = "curve"
	PatternZigzag Pattern = "zigzag"
	PatternRandom Pattern = "random"
)

// ParsePattern converts a CLI/config string into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	switch Pattern(s) {
	case PatternNone, PatternWave, PatternCurve, PatternZigzag, PatternRandom:
		return Pattern(s), nil
	}
	return "", fmt.Errorf("unknown pattern '%s'", s)
}

// Deterministic reports whether repeated runs with identical inputs
// reproduce identical series. Only the random walk draws from an RNG.
func (p Pattern) Deterministic() bool {
	return p != PatternRandom
}

// Tick is a single synthetic market data point. AskPrice always sits
// spread above BidPrice; volumes are derived from the timestamp.
type Tick struct {
	Timestamp time.Time `json:"timestamp"`
	BidPrice  float64   `json:"bid_price"`
	AskPrice  float64   `json:"ask_price"`
	BidVolume float64   `json:"bid_volume"`
	AskVolume float64   `json:"ask_volume"`
}

// Series wraps a generated tick sequence with its run metadata.
type Series struct {
	RunID     string    `json:"run_id"`
	Pattern   Pattern   `json:"pattern"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Ticks     []Tick    `json:"ticks"`
}
