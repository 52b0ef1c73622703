package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// now is replaced in tests
var now = time.Now

// ArchiveOutput moves the output directory to
// <parent>/archive/<name>-YYYYMMDD-HHMMSS and returns the new path. A
// missing output directory is not an error; the returned path is then empty.
func ArchiveOutput(outputDir string) (string, error) {
	info, err := os.Stat(outputDir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat output directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("output path is not a directory: %s", outputDir)
	}

	outputDir = filepath.Clean(outputDir)
	archiveDir := filepath.Join(filepath.Dir(outputDir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	archivePath := uniquePath(archiveDir, filepath.Base(outputDir), now())

	if err := os.Rename(outputDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive output directory: %w", err)
	}
	return archivePath, nil
}

// uniquePath picks the first free archive name: seconds, then
// microseconds, then a counter.
func uniquePath(archiveDir, name string, t time.Time) string {
	path := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", name, t.Format("20060102-150405")))
	if !exists(path) {
		return path
	}

	path = filepath.Join(archiveDir, fmt.Sprintf("%s-%s", name, t.Format("20060102-150405.000000")))
	for i := 2; exists(path); i++ {
		path = filepath.Join(archiveDir, fmt.Sprintf("%s-%s-%d", name, t.Format("20060102-150405.000000"), i))
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
