package cli

import (
	"context"
	"fmt"

	"jvcheck/internal/java"
	"jvcheck/internal/notify"

	log "github.com/sirupsen/logrus"
)

const (
	installedLabel = "Installed  :   "
	requiredLabel  = "Required   :   "
)

// Prober reports the banner of the installed Java
type Prober interface {
	Detect(ctx context.Context) (java.Banner, error)
}

// Runner ties the probe, the version check and the presenter together
type Runner struct {
	Prober    Prober
	Presenter notify.Presenter
	Logger    log.FieldLogger
}

// Run performs one check and returns the process exit code
func (r *Runner) Run(ctx context.Context, opts Options) int {
	banner, err := r.Prober.Detect(ctx)
	if err != nil {
		r.Logger.WithError(err).Warn("java probe did not finish")
		banner = java.Banner{Kind: java.BannerNotFound}
	}
	answer := banner.Text()

	if opts.Informational {
		r.display(answer, notify.SeverityInfo)
		return ExitSuccess
	}

	if !banner.Found() {
		r.display(answer, notify.SeverityWarning)
		return ExitNotFound
	}

	installed, err := java.ParseVersion(answer)
	if err != nil {
		r.Logger.WithError(err).Error("installed java reported an unusable version")
		r.display(fmt.Sprintf("Unable to read Java version %q\n%v", answer, err), notify.SeverityError)
		return ExitMalformedVersion
	}

	details := installedLabel + answer
	if opts.Requirement.Present {
		details += "\n" + requiredLabel + opts.Requirement.Raw
	}

	logger := r.Logger.WithFields(log.Fields{
		"installed": installed.String(),
		"policy":    opts.Requirement.Policy.String(),
	})

	if java.Satisfies(installed, opts.Requirement) {
		logger.Debug("java version accepted")
		r.display("Java version OK\n"+details, notify.SeverityInfo)
		return ExitSuccess
	}

	code := mismatchCode(installed)
	logger.WithField("exit_code", code).Debug("java version rejected")
	r.display("Java version requirements mismatch\n"+details, notify.SeverityStop)
	return code
}

func (r *Runner) display(message string, severity notify.Severity) {
	if err := r.Presenter.Display(message, severity); err != nil {
		r.Logger.WithError(err).Warn("could not display result")
	}
}
