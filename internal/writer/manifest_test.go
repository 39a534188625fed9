package writer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fxsynth/internal/model"
)

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.csv")
	series := model.Series{
		RunID:     "run-1",
		Pattern:   model.PatternWave,
		StartDate: time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2014, 1, 2, 0, 0, 0, 0, time.UTC),
		Ticks:     make([]model.Tick, 3),
	}

	if err := WriteManifest(NewManifest(series, path, "csv", 123)); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	data, err := os.ReadFile(path + ".manifest.json")
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.RunID != "run-1" || m.Pattern != "wave" || m.RecordCount != 3 || m.FileSize != 123 {
		t.Fatalf("unexpected manifest: %+v", m)
	}
	if m.StartDate != "2014.01.01" || m.EndDate != "2014.01.02" {
		t.Fatalf("unexpected date range: %s .. %s", m.StartDate, m.EndDate)
	}
}

func TestParseS3URL(t *testing.T) {
	cases := []struct {
		target string
		bucket string
		key    string
		ok     bool
	}{
		{"s3://fixtures/eurusd/2014.csv", "fixtures", "eurusd/2014.csv", true},
		{"s3://fixtures", "fixtures", "", true},
		{"/tmp/out.csv", "", "", false},
		{"", "", "", false},
	}
	for _, c := range cases {
		bucket, key, ok := ParseS3URL(c.target)
		if bucket != c.bucket || key != c.key || ok != c.ok {
			t.Errorf("ParseS3URL(%q) = (%q, %q, %v), want (%q, %q, %v)",
				c.target, bucket, key, ok, c.bucket, c.key, c.ok)
		}
	}
}
