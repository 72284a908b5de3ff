package bindgen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/LUDevNet/paradox-typed-db/internal/schema"
)

// Run loads the schema at schemaPath, generates the bindings and writes
// them into outDir. Files whose content is unchanged are not rewritten.
func Run(schemaPath, outDir string, opts Options, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	spec, err := schema.Load(schemaPath)
	if err != nil {
		return err
	}
	files, err := Generate(spec, opts)
	if err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(outDir, f.Name)
		written, err := writeIfChanged(path, f.Content)
		if err != nil {
			return err
		}
		logger.Info("generated", slog.String("file", path), slog.Bool("changed", written), slog.Int("tables", len(spec.Tables)))
	}
	return nil
}

func writeIfChanged(path string, content []byte) (bool, error) {
	old, err := os.ReadFile(path)
	if err == nil && bytes.Equal(old, content) {
		return false, nil
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
