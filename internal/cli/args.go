package cli

import (
	"fmt"
	"strings"

	"jvcheck/internal/java"

	log "github.com/sirupsen/logrus"
)

// Usage is shown for any argument that is not understood
const Usage = `Command line options are:
-q (optional) cmd line displays only (No window popups).
-r x.x.x.x minimum required version. Can be 1-4 numbers separated by periods.
-R x.x.x.x Same as above but installed java version must exactly match.
The -r and -R options set the CLI errorlevel for missed version requirements.`

// Options is the run configuration derived from the command line
type Options struct {
	Quiet       bool
	Requirement java.Requirement
	// Informational is set when no arguments were given at all: the installed
	// version is only shown and the exit code stays 0.
	Informational bool
}

// UsageError reports an argument that is not an option jvcheck knows
type UsageError struct {
	Token string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("unrecognized option %q", e.Token)
}

// ParseArgs builds Options from the raw arguments.
//
// Arguments are joined and re-split on whitespace, so a single quoted
// argument such as "-q -r 11" behaves like three. A trailing -r with no
// version stops parsing silently; a trailing -R stops parsing after logging
// a warning. Once -R has been applied, a later -r only replaces the version.
//
// On error the returned Options still carry everything parsed before the
// failing argument.
func ParseArgs(args []string, logger log.FieldLogger) (Options, error) {
	line := strings.Join(args, " ")
	opts := Options{Informational: line == ""}

	tokens := strings.Fields(line)
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		switch token {
		case "-q":
			opts.Quiet = true

		case "-r", "-R":
			if i+1 >= len(tokens) {
				if token == "-R" {
					logger.WithField("option", token).Warn("missing version after option, ignoring it")
				}
				return opts, nil
			}
			i++

			policy := java.AtLeast
			if token == "-R" || (opts.Requirement.Present && opts.Requirement.Policy == java.ExactMatch) {
				policy = java.ExactMatch
			}

			req, err := java.NewRequirement(policy, tokens[i])
			if err != nil {
				return opts, fmt.Errorf("%s %s: %w", token, tokens[i], err)
			}
			opts.Requirement = req

		default:
			return opts, &UsageError{Token: token}
		}
	}

	return opts, nil
}
