package main

import (
	"fmt"
	"log"
	"os"

	"github.com/espaciosalter20/Comic-read/internal/app"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("comicread %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	// Reports go to stdout; keep logging on stderr so output can be piped.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if os.Getenv("COMICREAD_LOG_LEVEL") == "debug" {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		log.Printf("comicread %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := app.Run(os.Args[1:]); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
