package generator

import (
	"math"

	"fxsynth/internal/model"
)

// Wave superimposes 1.5 sine cycles on a linear trend between
// StartPrice and EndPrice, or oscillates around a flat price when the
// two are equal. The absolute value guards against negative prices when
// volatility is large relative to the price level. The last sample may
// overshoot EndPrice slightly; that is intentional.
func Wave(p Params) []model.Tick {
	count := p.TickCount()
	deltaPrice := p.EndPrice - p.StartPrice
	n := float64(count - 1)

	timestamp := p.StartDate
	bidPrice := p.StartPrice
	askPrice := bidPrice + p.Spread
	bidVolume, askVolume := 1.0, 1.0+p.Spread

	ticks := make([]model.Tick, 0, count)
	for i := 0; i < count; i++ {
		ticks = append(ticks, model.Tick{
			Timestamp: timestamp,
			BidPrice:  bidPrice,
			AskPrice:  askPrice,
			BidVolume: bidVolume,
			AskVolume: askVolume,
		})
		timestamp = timestamp.Add(p.DeltaTime)
		x := float64(i+1) / n
		if math.Abs(deltaPrice) > 0 {
			bidPrice = math.Abs(p.StartPrice + x*deltaPrice + p.Volatility*math.Sin(x*3*math.Pi))
		} else {
			bidPrice = math.Abs(p.StartPrice + p.Volatility*math.Sin(x*3*math.Pi))
		}
		askPrice = bidPrice + p.Spread
		bidVolume, askVolume = volumesAt(timestamp, p.Spread)
	}
	return ticks
}
