// Package app implements the comicread command line interface.
//
// Each subcommand follows the same shape: parse flags, resolve the profile
// (file defaults overridden by flags), open the page source, run the
// requested operation, and emit a JSON report. Human-facing progress and
// warnings go to the standard logger (stderr); stdout carries only the
// report, so output can be piped.
package app

import (
	"fmt"
	"os"
	"strings"
)

// Run executes a subcommand. args is os.Args[1:].
func Run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, Usage())
		return fmt.Errorf("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "detect":
		return runDetect(rest)
	case "extract":
		return runExtract(rest)
	case "overlay":
		return runOverlay(rest)
	case "info":
		return runInfo(rest)
	case "profile-init":
		return runProfileInit(rest)
	case "help", "--help", "-h":
		fmt.Print(Usage())
		return nil
	default:
		return fmt.Errorf("unknown command %q (run 'comicread help')", cmd)
	}
}

// Usage returns the top-level help text.
func Usage() string {
	var b strings.Builder
	b.WriteString("comicread - comic page panel detection\n")
	b.WriteString("\n")
	b.WriteString("Usage: comicread <command> [flags] <source>\n")
	b.WriteString("\n")
	b.WriteString("A source is a directory of page images, a .zip/.cbz archive,\n")
	b.WriteString("a .pdf document, or a single image file.\n")
	b.WriteString("\n")
	b.WriteString("Commands:\n")
	b.WriteString("  detect        Find panels and print a JSON report\n")
	b.WriteString("  extract       Crop detected panels into image files\n")
	b.WriteString("  overlay       Write pages annotated with panel rectangles\n")
	b.WriteString("  info          Print page dimensions and background colors\n")
	b.WriteString("  profile-init  Write a default profile YAML\n")
	b.WriteString("  help          Print this help message\n")
	b.WriteString("\n")
	b.WriteString("Run 'comicread <command> -h' for command flags.\n")
	return b.String()
}

// runProfileInit writes the default profile, refusing to clobber an
// existing file.
func runProfileInit(args []string) error {
	fs := newFlagSet("profile-init")
	out := fs.String("out", "comicread.yaml", "profile path to create")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*out); err == nil {
		return fmt.Errorf("%s already exists", *out)
	}
	if err := defaultProfile().Save(*out); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", *out)
	return nil
}
