// Package download implements domain.FileDownloader for directories and streams.
package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// DirDownloader writes export files into a fixed directory.
type DirDownloader struct {
	dir string
}

// NewDirDownloader creates a DirDownloader. An empty dir means the working directory.
func NewDirDownloader(dir string) *DirDownloader {
	if dir == "" {
		dir = "."
	}
	return &DirDownloader{dir: dir}
}

// Download writes the file atomically and returns its absolute path.
// An existing file with the same name is replaced.
func (d *DirDownloader) Download(_ context.Context, file domain.ExportFile) (string, error) {
	if file.Name == "" || filepath.Base(file.Name) != file.Name {
		return "", fmt.Errorf("invalid export file name %q", file.Name)
	}
	if err := os.MkdirAll(d.dir, 0o750); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path, err := filepath.Abs(filepath.Join(d.dir, file.Name))
	if err != nil {
		return "", fmt.Errorf("resolve export path: %w", err)
	}
	if err := writeAtomic(path, file.Content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// WriterDownloader streams export files to a writer, e.g. stdout.
type WriterDownloader struct {
	w io.Writer
}

// NewWriterDownloader creates a WriterDownloader.
func NewWriterDownloader(w io.Writer) *WriterDownloader {
	return &WriterDownloader{w: w}
}

// Download writes the content followed by a newline and reports "-" as the location.
func (d *WriterDownloader) Download(_ context.Context, file domain.ExportFile) (string, error) {
	if _, err := d.w.Write(file.Content); err != nil {
		return "", fmt.Errorf("write %s: %w", file.Name, err)
	}
	if _, err := io.WriteString(d.w, "\n"); err != nil {
		return "", fmt.Errorf("write %s: %w", file.Name, err)
	}
	return "-", nil
}

var (
	_ domain.FileDownloader = (*DirDownloader)(nil)
	_ domain.FileDownloader = (*WriterDownloader)(nil)
)
