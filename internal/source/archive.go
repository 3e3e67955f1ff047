package source

import (
	"archive/zip"
	"fmt"
	"image"
	"path/filepath"
	"sort"
	"strings"
)

// ArchiveSource reads page images from a zip archive. CBZ files are plain
// zip archives by convention, so both extensions share this implementation.
// Pages are ordered by entry name.
type ArchiveSource struct {
	rc    *zip.ReadCloser
	pages []*zip.File
}

// OpenArchive returns an ArchiveSource for a .zip or .cbz file containing
// at least one image entry.
func OpenArchive(path string) (*ArchiveSource, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	var pages []*zip.File
	for _, f := range rc.File {
		if f.FileInfo().IsDir() || !isImagePath(f.Name) {
			continue
		}
		// Resource forks and hidden files from macOS archivers are not
		// pages even when they carry an image extension.
		if strings.HasPrefix(f.Name, "__MACOSX/") || strings.HasPrefix(filepath.Base(f.Name), ".") {
			continue
		}
		pages = append(pages, f)
	}
	if len(pages) == 0 {
		rc.Close()
		return nil, fmt.Errorf("no page images in %s", filepath.Base(path))
	}
	sort.SliceStable(pages, func(i, j int) bool { return pages[i].Name < pages[j].Name })

	return &ArchiveSource{rc: rc, pages: pages}, nil
}

// PageCount implements Source.
func (s *ArchiveSource) PageCount() int { return len(s.pages) }

// Page implements Source. Distinct archive entries may be read
// concurrently.
func (s *ArchiveSource) Page(index int) (image.Image, error) {
	if index < 0 || index >= len(s.pages) {
		return nil, fmt.Errorf("page %d out of range [0,%d)", index, len(s.pages))
	}
	entry := s.pages[index]

	f, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("open archive entry %s: %w", entry.Name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", entry.Name, err)
	}
	return img, nil
}

// Label implements Source.
func (s *ArchiveSource) Label(index int) string {
	if index < 0 || index >= len(s.pages) {
		return fmt.Sprintf("page %d", index+1)
	}
	return s.pages[index].Name
}

// Close implements Source.
func (s *ArchiveSource) Close() error { return s.rc.Close() }
