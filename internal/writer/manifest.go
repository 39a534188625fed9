package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"fxsynth/internal/model"
)

// Manifest is a sidecar description of a written fixture, so fixture
// directories stay browsable without re-parsing the data files.
type Manifest struct {
	RunID       string    `json:"run_id"`
	Pattern     string    `json:"pattern"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	RecordCount int       `json:"record_count"`
	Path        string    `json:"path"`
	FileSize    int64     `json:"file_size_in_bytes"`
	Format      string    `json:"format"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewManifest builds a manifest for a series written to path.
func NewManifest(series model.Series, path, format string, fileSize int64) Manifest {
	return Manifest{
		RunID:       series.RunID,
		Pattern:     string(series.Pattern),
		StartDate:   series.StartDate.Format("2006.01.02"),
		EndDate:     series.EndDate.Format("2006.01.02"),
		RecordCount: len(series.Ticks),
		Path:        path,
		FileSize:    fileSize,
		Format:      format,
		GeneratedAt: time.Now().UTC(),
	}
}

// WriteManifest stores the manifest next to the fixture as
// <path>.manifest.json.
func WriteManifest(m Manifest) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	sidecar := fmt.Sprintf("%s.manifest.json", m.Path)
	if err := os.WriteFile(sidecar, b, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
