package cli

import "jvcheck/internal/java"

// Exit codes
const (
	ExitSuccess = 0
	// ExitNotFound covers a missing launcher and unreadable launcher output
	ExitNotFound = 1
	ExitUsage    = 1
	ExitError    = 1
	// ExitMalformedVersion is used when a version cannot be read as numbers
	ExitMalformedVersion = 2
)

// mismatchCode is the exit code for a failed requirement: the installed
// feature version, so scripts can tell which Java they found.
func mismatchCode(installed java.Version) int {
	if installed.Feature <= 0 {
		return ExitError
	}
	return installed.Feature
}
