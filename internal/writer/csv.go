package writer

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"fxsynth/internal/model"
)

// timestampLayout renders tick times with millisecond resolution.
const timestampLayout = "2006.01.02 15:04:05.000"

// CSVWriter serializes ticks as headerless, minimally quoted CSV rows:
// timestamp, bid price, ask price, bid volume, ask volume. All numeric
// fields are fixed to the configured decimal digit count; prices are
// floored at 10^-digits so none of them format to zero.
type CSVWriter struct {
	digits int
	floor  float64
}

func NewCSVWriter(digits int) *CSVWriter {
	return &CSVWriter{
		digits: digits,
		floor:  math.Pow(10, -float64(digits)),
	}
}

// Write serializes all ticks to out. Formatting is idempotent: parsing
// a written field and re-formatting it reproduces the same string.
func (w *CSVWriter) Write(out io.Writer, ticks []model.Tick) error {
	cw := csv.NewWriter(out)
	for _, t := range ticks {
		row := []string{
			t.Timestamp.Format(timestampLayout),
			w.formatPrice(t.BidPrice),
			w.formatPrice(t.AskPrice),
			w.format(t.BidVolume),
			w.format(t.AskVolume),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (w *CSVWriter) formatPrice(v float64) string {
	return w.format(math.Max(v, w.floor))
}

func (w *CSVWriter) format(v float64) string {
	return strconv.FormatFloat(v, 'f', w.digits, 64)
}
