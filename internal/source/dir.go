package source

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
)

// DirSource reads page images from a directory. Pages are ordered by file
// name; subdirectories and non-image files are ignored.
type DirSource struct {
	dir   string
	files []string
}

// OpenDir returns a DirSource for a directory containing at least one image.
func OpenDir(dir string) (*DirSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !isImagePath(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no page images in %s", dir)
	}
	sort.Strings(files)

	return &DirSource{dir: dir, files: files}, nil
}

// PageCount implements Source.
func (s *DirSource) PageCount() int { return len(s.files) }

// Page implements Source.
func (s *DirSource) Page(index int) (image.Image, error) {
	if index < 0 || index >= len(s.files) {
		return nil, fmt.Errorf("page %d out of range [0,%d)", index, len(s.files))
	}
	return LoadImage(filepath.Join(s.dir, s.files[index]))
}

// Label implements Source.
func (s *DirSource) Label(index int) string {
	if index < 0 || index >= len(s.files) {
		return fmt.Sprintf("page %d", index+1)
	}
	return s.files[index]
}

// Close implements Source.
func (s *DirSource) Close() error { return nil }
