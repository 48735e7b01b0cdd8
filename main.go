package main

import (
	"os"

	"jvcheck/internal/cli"
)

// Version is set during build time via ldflags
var Version = "dev"

// Exit status: 0 when Java is present and meets the requirement, 1 when
// Java is missing or an option is unknown, 2 for an unreadable version, and
// the installed feature version when a requirement is not met.
func main() {
	os.Exit(cli.Execute(Version, os.Args[1:]))
}
