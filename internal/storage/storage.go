package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
)

// ImageExtensions are the picture types picked up by ListImages.
var ImageExtensions = []string{".png", ".jpg", ".jpeg"}

// ReadPage loads an HTML document.
func ReadPage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading page: %w", err)
	}
	return string(data), nil
}

// WritePage atomically replaces an existing document with content.
// atomic.WriteFile carries the original file mode over to the replacement.
func WritePage(path, content string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}

// OpenData opens a CSV source. The caller closes the returned reader.
func OpenData(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	return f, nil
}

// ListImages returns the sorted names of picture files directly inside dir.
// A missing directory is reported through os.ErrNotExist.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isImage(entry.Name()) {
			images = append(images, entry.Name())
		}
	}
	sort.Strings(images)

	return images, nil
}

func isImage(name string) bool {
	ext := filepath.Ext(name)
	for _, allowed := range ImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
