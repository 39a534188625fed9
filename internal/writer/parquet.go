package writer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	pqwriter "github.com/xitongsys/parquet-go/writer"

	"fxsynth/internal/model"
)

// parquetTick is the columnar layout of a tick record.
type parquetTick struct {
	Timestamp int64   `parquet:"name=timestamp, type=INT64"`
	BidPrice  float64 `parquet:"name=bid_price, type=DOUBLE"`
	AskPrice  float64 `parquet:"name=ask_price, type=DOUBLE"`
	BidVolume float64 `parquet:"name=bid_volume, type=DOUBLE"`
	AskVolume float64 `parquet:"name=ask_volume, type=DOUBLE"`
}

// memoryFile implements source.ParquetFile over a bytes.Buffer so the
// whole fixture can be assembled before it reaches its sink.
type memoryFile struct {
	buffer *bytes.Buffer
}

func newMemoryFile() *memoryFile {
	return &memoryFile{buffer: &bytes.Buffer{}}
}

func (mf *memoryFile) Create(name string) (source.ParquetFile, error) { return mf, nil }
func (mf *memoryFile) Open(name string) (source.ParquetFile, error)   { return mf, nil }

func (mf *memoryFile) Seek(offset int64, whence int) (int64, error) {
	// Append-only writing; no seeking needed.
	return int64(mf.buffer.Len()), nil
}

func (mf *memoryFile) Read(b []byte) (int, error)  { return mf.buffer.Read(b) }
func (mf *memoryFile) Write(b []byte) (int, error) { return mf.buffer.Write(b) }
func (mf *memoryFile) Close() error                { return nil }

// ParquetWriter serializes ticks into a single in-memory parquet file.
type ParquetWriter struct {
	compression parquet.CompressionCodec
}

func NewParquetWriter(compression string) *ParquetWriter {
	w := &ParquetWriter{}
	switch compression {
	case "snappy":
		w.compression = parquet.CompressionCodec_SNAPPY
	case "gzip":
		w.compression = parquet.CompressionCodec_GZIP
	default:
		w.compression = parquet.CompressionCodec_UNCOMPRESSED
	}
	return w
}

// Bytes renders the full tick sequence as a parquet file.
func (w *ParquetWriter) Bytes(ticks []model.Tick) ([]byte, error) {
	mf := newMemoryFile()
	pw, err := pqwriter.NewParquetWriter(mf, new(parquetTick), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet writer: %w", err)
	}
	pw.CompressionType = w.compression

	for _, t := range ticks {
		rec := parquetTick{
			Timestamp: t.Timestamp.UnixMilli(),
			BidPrice:  t.BidPrice,
			AskPrice:  t.AskPrice,
			BidVolume: t.BidVolume,
			AskVolume: t.AskVolume,
		}
		if err := pw.Write(rec); err != nil {
			pw.WriteStop()
			return nil, fmt.Errorf("failed to write parquet record: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("failed to finalize parquet writing: %w", err)
	}
	return mf.buffer.Bytes(), nil
}

// Write renders the ticks and copies the resulting file to out.
func (w *ParquetWriter) Write(out io.Writer, ticks []model.Tick) error {
	data, err := w.Bytes(ticks)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
