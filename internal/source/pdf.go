package source

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is the PDF raster resolution used when none is configured.
// 150 DPI keeps a letter-size page around 1275x1650 px, plenty for gutter
// geometry without the memory cost of print resolution.
const DefaultDPI = 150

// PDFSource renders pages of a PDF document through MuPDF.
type PDFSource struct {
	doc  *fitz.Document
	path string
	dpi  int
}

// OpenPDF returns a PDFSource rendering at the given DPI (DefaultDPI when
// dpi is zero or negative).
func OpenPDF(path string, dpi int) (*PDFSource, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &PDFSource{doc: doc, path: path, dpi: dpi}, nil
}

// PageCount implements Source.
func (s *PDFSource) PageCount() int { return s.doc.NumPage() }

// Page implements Source. Each render runs on a fresh document handle; a
// MuPDF context is not safe for concurrent rendering, and reopening is
// cheaper than serializing the whole pipeline on one handle.
func (s *PDFSource) Page(index int) (image.Image, error) {
	if index < 0 || index >= s.doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range [0,%d)", index, s.doc.NumPage())
	}

	worker, err := fitz.New(s.path)
	if err != nil {
		return nil, fmt.Errorf("open pdf for render: %w", err)
	}
	defer worker.Close()

	img, err := worker.ImageDPI(index, float64(s.dpi))
	if err != nil {
		return nil, fmt.Errorf("render pdf page %d: %w", index+1, err)
	}
	return img, nil
}

// Label implements Source.
func (s *PDFSource) Label(index int) string { return fmt.Sprintf("page %d", index+1) }

// Close implements Source.
func (s *PDFSource) Close() error { return s.doc.Close() }
