// ============================================================================
// cmdsys - Overloaded console command resolution
// ============================================================================
//
// Package:     version
// Description: Version information for the cmdsys module and its CLI
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Module is the release of the command system
const Module = "0.2.0"

// Commit and BuildDate are set at build time with
// -ldflags "-X github.com/msto63/cmdsys/pkg/core/version.Commit=...".
var (
	Commit    = "dev"
	BuildDate = ""
)

// String renders the version for --version output
func String() string {
	if BuildDate == "" {
		return fmt.Sprintf("%s (%s)", Module, Commit)
	}
	return fmt.Sprintf("%s (%s, built %s)", Module, Commit, BuildDate)
}
