// Package config loads and saves detection profiles.
//
// A profile is a YAML file bundling every knob of a detection run: engine
// variant, reading direction, worker count, page prefilters, overlay styling,
// and the detection thresholds. Missing keys keep their defaults, so a
// profile only needs the values it changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/espaciosalter20/Comic-read/internal/detect"
	"github.com/espaciosalter20/Comic-read/internal/source"
)

// Profile is the serialized configuration for a detection run.
type Profile struct {
	// Detector selects the engine variant ("grid" or "region").
	Detector string `yaml:"detector"`
	// Direction is the reading order ("ltr" or "rtl").
	Direction string `yaml:"direction"`
	// Workers bounds concurrent page analyses; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// PDFRenderDPI is the raster resolution for PDF pages.
	PDFRenderDPI int `yaml:"pdf_dpi"`

	// DenoiseRadius enables a Gaussian blur prefilter when positive.
	DenoiseRadius float64 `yaml:"denoise_radius"`
	// Sharpen enables a sharpening prefilter.
	Sharpen bool `yaml:"sharpen"`

	Overlay   OverlayProfile   `yaml:"overlay"`
	Detection DetectionProfile `yaml:"detection"`
}

// OverlayProfile styles the annotated overlay output.
type OverlayProfile struct {
	Color     string `yaml:"color"`
	Thickness int    `yaml:"thickness"`
	Labels    bool   `yaml:"labels"`
}

// DetectionProfile mirrors the detection thresholds in serializable form.
type DetectionProfile struct {
	EdgeThreshold         int     `yaml:"edge_threshold"`
	MinGutterRatio        float64 `yaml:"min_gutter_ratio"`
	MarginPixels          int     `yaml:"margin_pixels"`
	MinPanelSize          int     `yaml:"min_panel_size"`
	MinPanelAreaRatio     float64 `yaml:"min_panel_area_ratio"`
	MaxPanelAreaRatio     float64 `yaml:"max_panel_area_ratio"`
	GutterPadding         int     `yaml:"gutter_padding"`
	MergeOverlapThreshold float64 `yaml:"merge_overlap_threshold"`
	DilationSize          int     `yaml:"dilation_size"`
}

// Default returns the profile used when none is supplied.
func Default() *Profile {
	d := detect.DefaultConfig()
	return &Profile{
		Detector:     detect.VariantGrid,
		Direction:    detect.LeftToRight.String(),
		Workers:      0,
		PDFRenderDPI: source.DefaultDPI,
		Overlay: OverlayProfile{
			Color:     "#FF0000",
			Thickness: 3,
			Labels:    true,
		},
		Detection: DetectionProfile{
			EdgeThreshold:         d.EdgeThreshold,
			MinGutterRatio:        d.MinGutterRatio,
			MarginPixels:          d.MarginPixels,
			MinPanelSize:          d.MinPanelSize,
			MinPanelAreaRatio:     d.MinPanelAreaRatio,
			MaxPanelAreaRatio:     d.MaxPanelAreaRatio,
			GutterPadding:         d.GutterPadding,
			MergeOverlapThreshold: d.MergeOverlapThreshold,
			DilationSize:          d.DilationSize,
		},
	}
}

// Load reads a profile from a YAML file. Keys absent from the file keep
// their default values.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// Save writes the profile as YAML.
func (p *Profile) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// DetectionConfig converts the serialized thresholds into the detection
// package's configuration.
func (p *Profile) DetectionConfig() detect.Config {
	d := p.Detection
	return detect.Config{
		EdgeThreshold:         d.EdgeThreshold,
		MinGutterRatio:        d.MinGutterRatio,
		MarginPixels:          d.MarginPixels,
		MinPanelSize:          d.MinPanelSize,
		MinPanelAreaRatio:     d.MinPanelAreaRatio,
		MaxPanelAreaRatio:     d.MaxPanelAreaRatio,
		GutterPadding:         d.GutterPadding,
		MergeOverlapThreshold: d.MergeOverlapThreshold,
		DilationSize:          d.DilationSize,
	}
}

// ReadingDirection parses the profile's direction field.
func (p *Profile) ReadingDirection() (detect.Direction, error) {
	return detect.ParseDirection(p.Direction)
}

// Prefilters builds the page prefilter chain selected by the profile.
func (p *Profile) Prefilters() []source.Prefilter {
	var filters []source.Prefilter
	if p.DenoiseRadius > 0 {
		filters = append(filters, source.Denoise(p.DenoiseRadius))
	}
	if p.Sharpen {
		filters = append(filters, source.Sharpen())
	}
	return filters
}
