package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"jvcheck/internal/config"
	"jvcheck/internal/java"
	"jvcheck/internal/logger"
	"jvcheck/internal/notify"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewRootCmd builds the jvcheck command. The exit code of the run is
// stored in exitCode.
//
// Flag parsing is disabled: -q, -r and -R form a small positional grammar
// where anything unknown, --help included, is a usage error.
func NewRootCmd(version string, exitCode *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jvcheck [-q] [-r version | -R version]",
		Short: "Detect the installed Java version",
		Long: "jvcheck runs `java -version`, shows the installed version and optionally\n" +
			"checks it against a required version.\n\n" + Usage,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := run(cmd, version, args)
			*exitCode = code
			return err
		},
	}

	return cmd
}

// Execute runs jvcheck with args and returns the process exit code
func Execute(version string, args []string) int {
	code := ExitSuccess
	cmd := NewRootCmd(version, &code)
	setArgs(cmd, args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if code == ExitSuccess {
			code = ExitError
		}
	}
	return code
}

// setArgs hands args to cmd. cobra reads os.Args when given nil, so no
// arguments must be passed as an empty slice.
func setArgs(cmd *cobra.Command, args []string) {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
}

func run(cmd *cobra.Command, version string, args []string) (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return ExitError, err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return ExitError, err
	}
	appLogger := logger.New(logger.Config{
		Level:      level,
		Structured: cfg.StructuredLogs(),
		Output:     cmd.ErrOrStderr(),
	})
	// packages without an injected logger use the standard one
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetLevel(level)

	appLogger.WithFields(logrus.Fields{
		"version": version,
		"config":  cfg.Path(),
		"args":    args,
	}).Debug("starting jvcheck")

	opts, parseErr := ParseArgs(args, appLogger)
	quiet := opts.Quiet || cfg.Quiet
	presenter := notify.New(quiet, cmd.OutOrStdout())

	var usageErr *UsageError
	var versionErr *java.MalformedVersionError
	switch {
	case errors.As(parseErr, &usageErr):
		appLogger.WithField("token", usageErr.Token).Debug("unrecognized option")
		if err := presenter.Display(Usage, notify.SeverityError); err != nil {
			appLogger.WithError(err).Warn("could not display usage")
		}
		return ExitUsage, nil
	case errors.As(parseErr, &versionErr):
		if err := presenter.Display("Invalid required version\n"+parseErr.Error(), notify.SeverityError); err != nil {
			appLogger.WithError(err).Warn("could not display error")
		}
		return ExitMalformedVersion, nil
	case parseErr != nil:
		return ExitError, parseErr
	}

	var prober Prober = java.NewDetector(
		java.WithLauncher(cfg.Java),
		java.WithLogger(appLogger),
	)
	if !quiet && isTerminal(cmd.ErrOrStderr()) {
		prober = scanningProber{Prober: prober, out: cmd.ErrOrStderr()}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	runner := &Runner{
		Prober:    prober,
		Presenter: presenter,
		Logger:    appLogger,
	}
	code := runner.Run(ctx, opts)
	appLogger.WithField("exit_code", code).Debug("done")
	return code, nil
}

// scanningProber shows a spinner while the wrapped probe runs
type scanningProber struct {
	Prober
	out io.Writer
}

func (s scanningProber) Detect(ctx context.Context) (java.Banner, error) {
	var banner java.Banner
	var err error
	scanErr := java.WithScanner(s.out, "Checking installed Java...", func() {
		banner, err = s.Prober.Detect(ctx)
	})
	if scanErr != nil {
		logrus.WithError(scanErr).Debug("spinner unavailable")
	}
	return banner, err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
