package generator

import (
	"math"
	"math/rand"
	"time"

	"fxsynth/internal/model"
)

// Interval converts a ticks-per-minute density into the sampling
// interval. Rounding to microsecond resolution keeps the ceil-based
// tick count exact for densities that do not divide 60 seconds evenly.
func Interval(density int) time.Duration {
	return time.Duration(math.Round(60e6/float64(density))) * time.Microsecond
}

// Params carries the inputs shared by every price-path model. StartDate
// and EndDate are midnights of the first and last generated day; the
// series runs through end-of-day of EndDate. Spread is in price units
// (points already divided by 1e5).
type Params struct {
	StartDate  time.Time
	EndDate    time.Time
	StartPrice float64
	EndPrice   float64
	Spread     float64
	DeltaTime  time.Duration
	Volatility float64
}

// horizon is the exclusive upper bound of the series, one day past the
// last requested date.
func (p Params) horizon() time.Time {
	return p.EndDate.Add(24 * time.Hour)
}

// TickCount is the number of ticks a count-driven model emits:
// ceil of the generation span divided by the sampling interval.
func (p Params) TickCount() int {
	span := p.horizon().Sub(p.StartDate)
	return int((span + p.DeltaTime - 1) / p.DeltaTime)
}

// deltaPrice is the constant per-tick drift used by the linear and
// random models, spreading the full price delta across one interval
// less than the generation span.
func (p Params) deltaPrice() float64 {
	span := p.horizon().Sub(p.StartDate)
	return float64(p.DeltaTime) / float64(span-p.DeltaTime) * (p.EndPrice - p.StartPrice)
}

// Generate dispatches to the model selected by pattern. The RNG is only
// consulted by the random walk; deterministic patterns ignore it.
func Generate(pattern model.Pattern, p Params, rng *rand.Rand) []model.Tick {
	switch pattern {
	case model.PatternZigzag:
		return Zigzag(p)
	case model.PatternWave:
		return Wave(p)
	case model.PatternCurve:
		return Curve(p)
	case model.PatternRandom:
		return Random(p, rng)
	default:
		return Linear(p)
	}
}
