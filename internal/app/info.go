package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/espaciosalter20/Comic-read/internal/render"
)

// pageInfo describes one page of a source.
type pageInfo struct {
	Index      int                  `json:"index"`
	Label      string               `json:"label"`
	Width      int                  `json:"width"`
	Height     int                  `json:"height"`
	Background render.ColorEstimate `json:"background"`
	Error      string               `json:"error,omitempty"`
}

// infoReport describes a source.
type infoReport struct {
	Source    string     `json:"source"`
	PageCount int        `json:"page_count"`
	Pages     []pageInfo `json:"pages"`
}

// runInfo prints page dimensions and background color estimates, optionally
// writing page thumbnails for a picker UI.
func runInfo(args []string) error {
	var opts commonOpts
	fs := newFlagSet("info")
	opts.register(fs)
	thumbDir := fs.String("thumbs", "", "also write page thumbnails into this directory")
	thumbSize := fs.Int("thumb-size", 320, "thumbnail long edge in pixels")
	reportPath := fs.String("report", "-", "report destination ('-' for stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	profile, err := opts.resolveProfile()
	if err != nil {
		return err
	}
	src, err := openSource(fs, profile)
	if err != nil {
		return err
	}
	defer src.Close()

	pages, err := parsePages(opts.pages, src.PageCount())
	if err != nil {
		return err
	}
	if pages == nil {
		pages = make([]int, src.PageCount())
		for i := range pages {
			pages[i] = i
		}
	}

	if *thumbDir != "" {
		if err := os.MkdirAll(*thumbDir, 0o755); err != nil {
			return fmt.Errorf("create thumbnail directory: %w", err)
		}
	}

	report := infoReport{Source: fs.Arg(0), PageCount: src.PageCount()}
	for _, i := range pages {
		info := pageInfo{Index: i, Label: src.Label(i)}

		page, err := src.Page(i)
		if err != nil {
			log.Printf("page %d: %v", i+1, err)
			info.Error = err.Error()
			report.Pages = append(report.Pages, info)
			continue
		}

		info.Width = page.Bounds().Dx()
		info.Height = page.Bounds().Dy()
		info.Background = render.PageColor(page)

		if *thumbDir != "" {
			thumb, err := render.Thumbnail(page, *thumbSize)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("page%04d_thumb.png", i+1)
			if err := imaging.Save(thumb, filepath.Join(*thumbDir, name)); err != nil {
				return fmt.Errorf("save %s: %w", name, err)
			}
		}
		report.Pages = append(report.Pages, info)
	}

	return writeJSON(*reportPath, report)
}
