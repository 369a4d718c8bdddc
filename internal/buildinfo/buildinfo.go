// Package buildinfo holds version data injected at build time:
//
//	go build -ldflags "-X github.com/and161185/fitness-tracker/internal/buildinfo.BuildVersion=v1.0.0" ./cmd/tracker
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Print writes the build version, date and commit to w.
func Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(BuildVersion))
	fmt.Fprintf(w, "Build date: %s\n", orNA(BuildDate))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(BuildCommit))
}
