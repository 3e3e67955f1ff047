package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/espaciosalter20/Comic-read/internal/detect"
	"github.com/espaciosalter20/Comic-read/internal/render"
	"github.com/espaciosalter20/Comic-read/internal/source"
)

// overlayReport summarizes an overlay run.
type overlayReport struct {
	Pages   int      `json:"pages"`
	Skipped int      `json:"skipped_pages"`
	Files   []string `json:"files"`
}

// runOverlay writes each analyzed page with its detected panels drawn on.
func runOverlay(args []string) error {
	var opts commonOpts
	fs := newFlagSet("overlay")
	opts.register(fs)
	outDir := fs.String("out", "overlays", "output directory")
	colorHex := fs.String("color", "", "outline color, e.g. '#00FF00' (overrides profile)")
	thickness := fs.Int("thickness", 0, "outline width in pixels (overrides profile)")
	reportPath := fs.String("report", "-", "report destination ('-' for stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	profile, err := opts.resolveProfile()
	if err != nil {
		return err
	}
	if *colorHex != "" {
		profile.Overlay.Color = *colorHex
	}
	if *thickness > 0 {
		profile.Overlay.Thickness = *thickness
	}

	runner, err := buildRunner(profile)
	if err != nil {
		return err
	}
	opened, err := openSource(fs, profile)
	if err != nil {
		return err
	}
	src := source.NewCachedSource(opened)
	defer src.Close()

	pages, err := parsePages(opts.pages, src.PageCount())
	if err != nil {
		return err
	}

	book, err := runner.Run(context.Background(), src, pages)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	report := overlayReport{Pages: len(book.Pages)}
	renderOpts := render.OverlayOptions{
		ColorHex:  profile.Overlay.Color,
		Thickness: profile.Overlay.Thickness,
		Labels:    profile.Overlay.Labels,
	}
	for _, pr := range book.Pages {
		if pr.Result.Status == detect.StatusError {
			log.Printf("skipping %s: %s", pr.Label, pr.Result.Err)
			report.Skipped++
			continue
		}

		page, err := src.Page(pr.Index)
		if err != nil {
			log.Printf("skipping %s: %v", pr.Label, err)
			report.Skipped++
			continue
		}

		annotated, err := render.Overlay(page, pr.Result.Panels, renderOpts)
		if err != nil {
			return fmt.Errorf("%s: %w", pr.Label, err)
		}
		name := fmt.Sprintf("page%04d.png", pr.Index+1)
		path := filepath.Join(*outDir, name)
		if err := imaging.Save(annotated, path); err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
		report.Files = append(report.Files, path)
		src.Evict(pr.Index)
	}

	return writeJSON(*reportPath, report)
}
