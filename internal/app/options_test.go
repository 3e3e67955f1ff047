package app

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/espaciosalter20/Comic-read/internal/config"
)

func TestParsePages(t *testing.T) {
	tests := []struct {
		spec string
		want []int
	}{
		{"", nil},
		{"all", nil},
		{"1", []int{0}},
		{"2-4", []int{1, 2, 3}},
		{"4-2", []int{1, 2, 3}},
		{"1,3", []int{0, 2}},
		{"3,1", []int{0, 2}},
		{"1,2-3,2", []int{0, 1, 2}},
		{" 1 , 2 ", []int{0, 1}},
	}
	for _, tt := range tests {
		got, err := parsePages(tt.spec, 10)
		if err != nil {
			t.Errorf("parsePages(%q) error: %v", tt.spec, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parsePages(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestParsePages_Errors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr string
	}{
		{"0", "out of range"},
		{"11", "out of range"},
		{"5-12", "out of range"},
		{"abc", "bad page selection"},
		{"1-x", "bad page selection"},
	}
	for _, tt := range tests {
		_, err := parsePages(tt.spec, 10)
		if err == nil {
			t.Errorf("parsePages(%q): expected error", tt.spec)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("parsePages(%q) error = %q, want %q", tt.spec, err, tt.wantErr)
		}
	}
}

func TestResolveProfile_Defaults(t *testing.T) {
	var opts commonOpts
	p, err := opts.resolveProfile()
	if err != nil {
		t.Fatalf("resolveProfile: %v", err)
	}
	want := config.Default()
	if !reflect.DeepEqual(p, want) {
		t.Errorf("got %+v, want %+v", p, want)
	}
}

func TestResolveProfile_FlagOverrides(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "profile.yaml")
	base := config.Default()
	base.Detector = "region"
	base.Workers = 2
	if err := base.Save(profilePath); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	opts := commonOpts{
		profile:   profilePath,
		direction: "rtl",
		workers:   8,
	}
	p, err := opts.resolveProfile()
	if err != nil {
		t.Fatalf("resolveProfile: %v", err)
	}

	// Untouched flags keep the file's values; set flags win.
	if p.Detector != "region" {
		t.Errorf("Detector = %s, want region from file", p.Detector)
	}
	if p.Direction != "rtl" {
		t.Errorf("Direction = %s, want rtl from flag", p.Direction)
	}
	if p.Workers != 8 {
		t.Errorf("Workers = %d, want 8 from flag", p.Workers)
	}
}

func TestResolveProfile_MissingFile(t *testing.T) {
	opts := commonOpts{profile: filepath.Join(t.TempDir(), "absent.yaml")}
	if _, err := opts.resolveProfile(); err == nil {
		t.Error("expected error for missing profile file")
	}
}

func TestBuildRunner_BadProfile(t *testing.T) {
	p := config.Default()
	p.Detector = "cascade"
	if _, err := buildRunner(p); err == nil {
		t.Error("expected error for unknown detector")
	}

	p = config.Default()
	p.Direction = "spiral"
	if _, err := buildRunner(p); err == nil {
		t.Error("expected error for unknown direction")
	}
}
