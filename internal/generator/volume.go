package generator

import (
	"math"
	"time"
)

// volumesAt derives a deterministic pseudo-volume pair from a tick
// timestamp. The divisor is the last three decimal digits of the
// minutes-since-epoch plus one, which keeps repeated runs with
// identical inputs reproducing identical volume sequences without a
// separate random source. spread is in price units and is scaled to
// points here; it must stay well below the 1000 volume ceiling.
func volumesAt(ts time.Time, spread float64) (bidVolume, askVolume float64) {
	epoch := float64(ts.UnixNano()) / float64(time.Second)
	points := spread * 1e5
	d := float64(int64(epoch/60)%1000 + 1)
	bidVolume = math.Floor(math.Mod(epoch/d, 1e3-points))
	return bidVolume, bidVolume + points
}
