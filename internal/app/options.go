package app

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/espaciosalter20/Comic-read/internal/config"
	"github.com/espaciosalter20/Comic-read/internal/detect"
	"github.com/espaciosalter20/Comic-read/internal/pipeline"
	"github.com/espaciosalter20/Comic-read/internal/source"
)

// commonOpts are the flags shared by every analysis subcommand.
type commonOpts struct {
	profile   string
	detector  string
	direction string
	pages     string
	workers   int
	dpi       int
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return fs
}

func (o *commonOpts) register(fs *flag.FlagSet) {
	fs.StringVar(&o.profile, "profile", "", "profile YAML path (default: built-in profile)")
	fs.StringVar(&o.detector, "detector", "", "detector variant: grid or region (overrides profile)")
	fs.StringVar(&o.direction, "direction", "", "reading direction: ltr or rtl (overrides profile)")
	fs.StringVar(&o.pages, "pages", "", "pages to analyze, 1-based, e.g. 1,4-6 (default: all)")
	fs.IntVar(&o.workers, "workers", 0, "concurrent page analyses (overrides profile; 0 = auto)")
	fs.IntVar(&o.dpi, "dpi", 0, "PDF raster DPI (overrides profile)")
}

// defaultProfile exists so profile-init and the options loader agree on
// what "no profile" means.
func defaultProfile() *config.Profile {
	return config.Default()
}

// resolveProfile loads the profile file if given and layers the flag
// overrides on top.
func (o *commonOpts) resolveProfile() (*config.Profile, error) {
	p := defaultProfile()
	if o.profile != "" {
		loaded, err := config.Load(o.profile)
		if err != nil {
			return nil, err
		}
		p = loaded
	}
	if o.detector != "" {
		p.Detector = o.detector
	}
	if o.direction != "" {
		p.Direction = o.direction
	}
	if o.workers != 0 {
		p.Workers = o.workers
	}
	if o.dpi != 0 {
		p.PDFRenderDPI = o.dpi
	}
	return p, nil
}

// buildRunner turns the resolved profile into a pipeline runner.
func buildRunner(p *config.Profile) (*pipeline.Runner, error) {
	detector, err := detect.New(p.Detector, p.DetectionConfig())
	if err != nil {
		return nil, err
	}
	dir, err := p.ReadingDirection()
	if err != nil {
		return nil, err
	}
	return &pipeline.Runner{
		Detector:   detector,
		Direction:  dir,
		Workers:    p.Workers,
		Prefilters: p.Prefilters(),
	}, nil
}

// openSource opens the positional source argument.
func openSource(fs *flag.FlagSet, p *config.Profile) (source.Source, error) {
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one source argument, got %d", fs.NArg())
	}
	return source.Open(fs.Arg(0), source.Options{PDFRenderDPI: p.PDFRenderDPI})
}

// parsePages expands a 1-based page selection like "1,4-6" into sorted
// 0-based indices. An empty selection means all pages.
func parsePages(spec string, pageCount int) ([]int, error) {
	if spec == "" || spec == "all" {
		return nil, nil
	}

	seen := make(map[int]bool)
	var pages []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi := part, part
		if i := strings.IndexByte(part, '-'); i >= 0 {
			lo, hi = part[:i], part[i+1:]
		}
		first, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("bad page selection %q", part)
		}
		last, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("bad page selection %q", part)
		}
		if first > last {
			first, last = last, first
		}
		for n := first; n <= last; n++ {
			if n < 1 || n > pageCount {
				return nil, fmt.Errorf("page %d out of range 1-%d", n, pageCount)
			}
			if !seen[n-1] {
				seen[n-1] = true
				pages = append(pages, n-1)
			}
		}
	}
	sort.Ints(pages)
	return pages, nil
}
