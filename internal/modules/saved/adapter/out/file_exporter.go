package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	savedout "lotus/internal/modules/saved/port/out"
)

// FileExporter writes exports into a directory, replacing any file of the
// same name.
type FileExporter struct {
	dir string
}

func NewFileExporter(dir string) savedout.Exporter {
	return &FileExporter{dir: dir}
}

func (e *FileExporter) Export(_ context.Context, filename string, payload []byte) (string, error) {
	if filepath.Base(filename) != filename || filename == "." || filename == "" {
		return "", fmt.Errorf("invalid export filename %q", filename)
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(e.dir, filename)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
