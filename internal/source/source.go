package source

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// Source is a read-only sequence of comic page images.
type Source interface {
	// PageCount returns the number of pages.
	PageCount() int

	// Page decodes and returns the page at the given 0-based index.
	// Implementations are safe for concurrent calls.
	Page(index int) (image.Image, error)

	// Label returns a display name for the page, such as the file name
	// inside an archive or a 1-based PDF page number.
	Label(index int) string

	// Close releases any resources held by the container.
	Close() error
}

// Options adjusts how containers are opened.
type Options struct {
	// PDFRenderDPI is the raster resolution for PDF pages. Zero selects
	// DefaultDPI.
	PDFRenderDPI int
}

// Open returns a Source for path: a directory of images, a .zip/.cbz
// archive, a .pdf document, or a single image file.
func Open(path string, opts Options) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	if info.IsDir() {
		return OpenDir(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".cbz":
		return OpenArchive(path)
	case ".pdf":
		return OpenPDF(path, opts.PDFRenderDPI)
	default:
		if isImagePath(path) {
			return OpenFile(path)
		}
		return nil, fmt.Errorf("unsupported source type: %s", filepath.Base(path))
	}
}

// FileSource serves one standalone image file as a single-page book.
type FileSource struct {
	path string
}

// OpenFile returns a FileSource for a single image file.
func OpenFile(path string) (*FileSource, error) {
	if !isImagePath(path) {
		return nil, fmt.Errorf("not an image file: %s", filepath.Base(path))
	}
	return &FileSource{path: path}, nil
}

// PageCount implements Source.
func (s *FileSource) PageCount() int { return 1 }

// Page implements Source.
func (s *FileSource) Page(index int) (image.Image, error) {
	if index != 0 {
		return nil, fmt.Errorf("page %d out of range [0,1)", index)
	}
	return LoadImage(s.path)
}

// Label implements Source.
func (s *FileSource) Label(index int) string { return filepath.Base(s.path) }

// Close implements Source.
func (s *FileSource) Close() error { return nil }
