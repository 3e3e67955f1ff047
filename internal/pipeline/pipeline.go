// Package pipeline runs panel detection across every page of a book,
// fanning pages out to a bounded worker pool. Page failures (decode errors,
// detection panics) are embedded in the page's result; only context
// cancellation aborts a run.
package pipeline

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/espaciosalter20/Comic-read/internal/detect"
	"github.com/espaciosalter20/Comic-read/internal/source"
)

// Runner drives detection over the pages of a source.
type Runner struct {
	// Detector analyzes a single page. Required.
	Detector detect.Detector
	// Direction is the reading order passed to the detector.
	Direction detect.Direction
	// Workers bounds concurrent page analyses. Values below 1 select
	// GOMAXPROCS.
	Workers int
	// Prefilters run on each decoded page before detection, in order.
	Prefilters []source.Prefilter
}

// PageReport is the detection outcome for one page.
type PageReport struct {
	Index  int           `json:"index"`
	Label  string        `json:"label"`
	Result detect.Result `json:"result"`
}

// BookReport is the detection outcome for a whole book.
type BookReport struct {
	Detector string       `json:"detector"`
	Pages    []PageReport `json:"pages"`
	// PanelCount totals the panels across all pages.
	PanelCount int `json:"panel_count"`
	// Failed counts pages whose result carries the failure status.
	Failed int `json:"failed"`
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Run analyzes the requested pages. A nil or empty pages selection means
// every page of the source. Reports line up with the selection order.
func (r *Runner) Run(ctx context.Context, src source.Source, pages []int) (*BookReport, error) {
	if len(pages) == 0 {
		pages = make([]int, src.PageCount())
		for i := range pages {
			pages[i] = i
		}
	}

	workers := r.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	reports := make([]PageReport, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for slot, pageIndex := range pages {
		slot, pageIndex := slot, pageIndex
		g.Go(func() error {
			reports[slot] = r.runPage(gctx, src, pageIndex)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &BookReport{
		Detector: r.Detector.Name(),
		Pages:    reports,
		Elapsed:  time.Since(start),
	}
	for _, pr := range reports {
		report.PanelCount += len(pr.Result.Panels)
		if pr.Result.Status == detect.StatusError {
			report.Failed++
		}
	}
	return report, nil
}

// runPage loads, filters, and analyzes one page. Load errors become the
// failure variant so one broken page cannot sink the book.
func (r *Runner) runPage(ctx context.Context, src source.Source, pageIndex int) PageReport {
	report := PageReport{Index: pageIndex, Label: src.Label(pageIndex)}

	img, err := src.Page(pageIndex)
	if err != nil {
		report.Result = detect.Result{Status: detect.StatusError, Err: err.Error()}
		return report
	}
	for _, f := range r.Prefilters {
		img = f(img)
	}
	report.Result = r.Detector.Detect(ctx, img, r.Direction)
	return report
}
