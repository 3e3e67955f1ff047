package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// runDetect analyzes a source and prints the detection report as JSON.
func runDetect(args []string) error {
	var opts commonOpts
	fs := newFlagSet("detect")
	opts.register(fs)
	out := fs.String("out", "-", "report destination ('-' for stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	profile, err := opts.resolveProfile()
	if err != nil {
		return err
	}
	runner, err := buildRunner(profile)
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

	report, err := runner.Run(context.Background(), src, pages)
	if err != nil {
		return err
	}

	return writeJSON(*out, report)
}

// writeJSON emits v as indented JSON to a file or stdout.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
