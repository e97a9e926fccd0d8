package pipeline

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Archive is the packaged batch, ready to be saved or streamed
type Archive struct {
	Name  string
	Data  []byte
	Files []string // entry names in archive order
}

// entry is one serialized document waiting to be packed
type entry struct {
	name string
	data []byte
}

// packEntries zips the entries in order. A later entry with the same name
// replaces the content of the earlier one and keeps its position.
func packEntries(entries []entry, modified time.Time) ([]byte, []string, error) {
	order := make([]string, 0, len(entries))
	content := make(map[string][]byte, len(entries))
	for _, e := range entries {
		if _, seen := content[e.name]; !seen {
			order = append(order, e.name)
		}
		content[e.name] = e.data
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range order {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to add %s: %w", name, err)
		}
		if _, err := w.Write(content[name]); err != nil {
			return nil, nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), order, nil
}

// WriteToDir saves the archive under its own name in dir and returns the full path
func (a *Archive) WriteToDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, a.Name)
	if err := os.WriteFile(path, a.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to write archive: %w", err)
	}
	return path, nil
}
