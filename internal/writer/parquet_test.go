package writer

import (
	"testing"
	"time"

	"fxsynth/internal/model"
)

func TestParquetBytes(t *testing.T) {
	ticks := []model.Tick{
		{Timestamp: time.Unix(1388534400, 0).UTC(), BidPrice: 2, AskPrice: 2.0001, BidVolume: 1, AskVolume: 1.0001},
		{Timestamp: time.Unix(1388534460, 0).UTC(), BidPrice: 2.1, AskPrice: 2.1001, BidVolume: 5, AskVolume: 15},
	}
	for _, compression := range []string{"", "snappy", "gzip"} {
		data, err := NewParquetWriter(compression).Bytes(ticks)
		if err != nil {
			t.Fatalf("compression %q: %v", compression, err)
		}
		if len(data) == 0 {
			t.Fatalf("compression %q: empty parquet file", compression)
		}
	}
}
