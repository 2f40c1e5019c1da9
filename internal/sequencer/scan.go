package sequencer

import (
	"fmt"
	"os"
	"path/filepath"

	"file-mover/internal/models"
)

// ScanSource lists the regular files directly inside dir, sorted by name.
// Symlinks count when they resolve to a regular file.
func ScanSource(dir string) ([]models.PendingFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list source folder %s: %w", dir, err)
	}

	files := make([]models.PendingFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, models.PendingFile{Name: entry.Name(), Size: info.Size()})
	}
	return files, nil
}
