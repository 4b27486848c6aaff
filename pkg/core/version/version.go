// ============================================================================
// mcli - Minimal interactive command shell
// ============================================================================
//
// Package:     version
// Description: Build metadata shared by the CLI entry point and the shell
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Build metadata, overridable via -ldflags "-X".
var (
	Version   = "1.0.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Name is the program name used in version output.
const Name = "mcli"

// Summary returns the single-line version string, e.g. "mcli 1.0.0".
func Summary() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	return fmt.Sprintf("%s %s", Name, v)
}

// Details returns the multi-line build information block printed by
// verbose version output.
func Details() []string {
	commit := GitCommit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return []string{
		fmt.Sprintf("  Git Commit: %s", commit),
		fmt.Sprintf("  Build Date: %s", BuildDate),
		fmt.Sprintf("  Go Version: %s", runtime.Version()),
		fmt.Sprintf("  OS/Arch:    %s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
