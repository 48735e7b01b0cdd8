package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"golang.org/x/term"
)

// DefaultLevel keeps diagnostics quiet unless something is wrong
const DefaultLevel = logrus.WarnLevel

// Config selects the level, format and destination of the application logger
type Config struct {
	Level      logrus.Level
	Structured bool
	Output     io.Writer
}

// ParseLevel accepts logrus level names; an empty string means DefaultLevel
func ParseLevel(name string) (logrus.Level, error) {
	if strings.TrimSpace(name) == "" {
		return DefaultLevel, nil
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return lvl, nil
}

// New builds the application logger. Text output is colored only when
// written to a terminal.
func New(cfg Config) *logrus.Logger {
	appLogger := logrus.New()

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	appLogger.SetOutput(output)
	appLogger.SetLevel(cfg.Level)

	if cfg.Structured {
		appLogger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		appLogger.SetFormatter(&prefixed.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
			ForceFormatting: true,
			DisableColors:   !isTerminal(output),
		})
	}

	return appLogger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
