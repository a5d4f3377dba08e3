package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame       int        `json:"frame"`
	Orientation [3]float64 `json:"orientation"`
	Image       string     `json:"image"`
	Polygons    int        `json:"polygons"`
	Lines       int        `json:"lines"`
	Clipped     int        `json:"clipped"`
	Warning     string     `json:"warning,omitempty"`
}

// WriteManifest writes manifest.json listing every successfully rendered
// frame. Image paths are relative to dir.
func WriteManifest(dir string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		rel, err := filepath.Rel(dir, r.Path)
		if err != nil {
			rel = r.Path
		}
		entries = append(entries, ManifestEntry{
			Frame:       r.Frame,
			Orientation: r.Orientation,
			Image:       filepath.ToSlash(rel),
			Polygons:    r.Stats.Polygons,
			Lines:       r.Stats.Lines,
			Clipped:     r.Stats.Clipped,
			Warning:     r.Warning,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0644)
}
