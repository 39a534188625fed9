package generator

import (
	"math/rand"

	"fxsynth/internal/model"
)

// Random walks the price along the same base drift as Linear with
// uniform noise proportional to the drift and volatility added at each
// step. The RNG is injected so tests can seed it; the CLI seeds from
// the wall clock. The final tick is forced onto EndPrice so the path's
// visible endpoint matches the requested target despite the noise.
func Random(p Params, rng *rand.Rand) []model.Tick {
	count := p.TickCount()
	deltaPrice := p.deltaPrice()

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
		bidPrice += deltaPrice + deltaPrice*(rng.Float64()-0.5)*p.Volatility
		askPrice = bidPrice + p.Spread
		bidVolume, askVolume = volumesAt(timestamp, p.Spread)
	}
	ticks[count-1].BidPrice = p.EndPrice
	ticks[count-1].AskPrice = p.EndPrice + p.Spread
	return ticks
}
