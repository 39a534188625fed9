package generator

import "fxsynth/internal/model"

// Linear drifts the bid price by a constant per-tick delta from
// StartPrice toward EndPrice. The drift is calibrated one interval past
// the last emitted tick, so the final sample stops one step short of
// EndPrice.
func Linear(p Params) []model.Tick {
	horizon := p.horizon()
	deltaPrice := p.deltaPrice()

	timestamp := p.StartDate
	bidPrice := p.StartPrice
	askPrice := bidPrice + p.Spread
	bidVolume, askVolume := 1.0, 1.0+p.Spread

	ticks := make([]model.Tick, 0, p.TickCount())
	for timestamp.Before(horizon) {
		ticks = append(ticks, model.Tick{
			Timestamp: timestamp,
			BidPrice:  bidPrice,
			AskPrice:  askPrice,
			BidVolume: bidVolume,
			AskVolume: askVolume,
		})
		timestamp = timestamp.Add(p.DeltaTime)
		bidPrice += deltaPrice
		askPrice += deltaPrice
		bidVolume, askVolume = volumesAt(timestamp, p.Spread)
	}
	return ticks
}
