package generator

import (
	"math"

	"fxsynth/internal/model"
)

// zigzagForward is the length of the rising stroke in ticks; the
// falling stroke scales with volatility.
const zigzagForward = 500

// Zigzag oscillates the price in a sawtooth: up for zigzagForward
// ticks, down for a volatility-sized window, with the up-stroke scaled
// so the net drift per tick stays at lift. The last backward ticks
// close linearly onto EndPrice.
func Zigzag(p Params) []model.Tick {
	count := p.TickCount()
	lift := (p.EndPrice - p.StartPrice) / float64(count)
	backward := int(math.Round(p.Volatility * 50))

	timestamp := p.StartDate
	bidPrice := p.StartPrice
	askPrice := bidPrice + p.Spread
	bidVolume, askVolume := 1.0, 1.0+p.Spread

	ticks := make([]model.Tick, 0, count)
	for i := 0; i < count-backward; i++ {
		ticks = append(ticks, model.Tick{
			Timestamp: timestamp,
			BidPrice:  bidPrice,
			AskPrice:  askPrice,
			BidVolume: bidVolume,
			AskVolume: askVolume,
		})
		timestamp = timestamp.Add(p.DeltaTime)
		if (i+1)%(zigzagForward+backward) < zigzagForward {
			bidPrice += float64(zigzagForward+2*backward) / zigzagForward * lift
		} else {
			bidPrice -= lift
		}
		askPrice = bidPrice + p.Spread
		bidVolume, askVolume = volumesAt(timestamp, p.Spread)
	}

	// Close the tail as a straight line landing on EndPrice.
	lift = (p.EndPrice - bidPrice) / float64(backward-1)
	for i := count - backward; i < count; i++ {
		ticks = append(ticks, model.Tick{
			Timestamp: timestamp,
			BidPrice:  bidPrice,
			AskPrice:  askPrice,
			BidVolume: bidVolume,
			AskVolume: askVolume,
		})
		timestamp = timestamp.Add(p.DeltaTime)
		bidPrice += lift
		askPrice = bidPrice + p.Spread
		bidVolume, askVolume = volumesAt(timestamp, p.Spread)
	}
	return ticks
}
