package generator

import (
	"math"

	"fxsynth/internal/model"
)

// Curve interpolates from StartPrice to EndPrice along an exponential
// decay. Volatility controls the curvature: lower values front-load the
// movement, higher values flatten it toward a straight line.
func Curve(p Params) []model.Tick {
	count := p.TickCount()
	deltaPrice := p.EndPrice - p.StartPrice
	d := float64(count) / p.Volatility
	last := math.Exp(float64(count-1) / d)

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
		bidPrice = p.StartPrice + (1-(math.Exp(float64(i+1)/d)-last)/(1-last))*deltaPrice
		askPrice = bidPrice + p.Spread
		bidVolume, askVolume = volumesAt(timestamp, p.Spread)
	}
	return ticks
}
