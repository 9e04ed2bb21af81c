package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/pictorialkey/internal/card"
	"github.com/arcanaland/pictorialkey/internal/config"
)

// Write stores the result as the three JSON files named by cfg
func (r *Result) Write(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	data := card.Collection{
		Count: len(r.Cards),
		Cards: r.Cards,
	}
	if err := writeJSON(cfg.CardDataPath(), data); err != nil {
		return err
	}
	if err := writeJSON(cfg.MinorTextPath(), r.MinorText); err != nil {
		return err
	}
	return writeJSON(cfg.MajorTextPath(), r.MajorText)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	return nil
}
