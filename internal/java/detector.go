package java

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"jvcheck/internal/env"

	log "github.com/sirupsen/logrus"
)

// DefaultLauncher is the command looked up on PATH when none is configured
const DefaultLauncher = "java"

// captureFile is the pattern for the file receiving the launcher's stderr
const captureFile = "javaVersion-*.txt"

// BannerKind classifies the outcome of a probe
type BannerKind int

const (
	// BannerFound means a quoted version token was read from the banner
	BannerFound BannerKind = iota
	// BannerNotFound means the launcher failed or printed no version token
	BannerNotFound
	// BannerUnreadable means the launcher ran but its output could not be opened
	BannerUnreadable
)

// Banner is what a probe learned from the Java launcher
type Banner struct {
	Kind BannerKind
	text string
}

// Text returns the version token, the NotFound sentinel, or a description
// of why the output could not be read.
func (b Banner) Text() string {
	if b.Kind == BannerNotFound || b.text == "" {
		return NotFound
	}
	return b.text
}

// Found reports whether the banner carries a version token
func (b Banner) Found() bool {
	return b.Kind == BannerFound && b.text != ""
}

// Detector asks the Java launcher for its version
type Detector struct {
	launcher string
	tempDir  func() string
	logger   log.FieldLogger
}

// DetectorOption customizes a Detector
type DetectorOption func(*Detector)

// WithLauncher sets the command run to query the version
func WithLauncher(launcher string) DetectorOption {
	return func(d *Detector) {
		if launcher != "" {
			d.launcher = launcher
		}
	}
}

// WithTempDir overrides where the launcher output is captured
func WithTempDir(dir string) DetectorOption {
	return func(d *Detector) {
		d.tempDir = func() string { return dir }
	}
}

// WithLogger sets the logger used for probe diagnostics
func WithLogger(logger log.FieldLogger) DetectorOption {
	return func(d *Detector) {
		d.logger = logger
	}
}

// NewDetector creates a new Java detector
func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{
		launcher: DefaultLauncher,
		tempDir:  env.TempFolder,
		logger:   log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect runs `<launcher> -version` with stderr redirected to a scratch file
// and extracts the version token from its first line. The scratch file is
// removed before Detect returns. The error is non-nil only when ctx ends
// before the launcher does.
func (d *Detector) Detect(ctx context.Context) (Banner, error) {
	dir := d.tempDir()
	logger := d.logger.WithField("launcher", d.launcher)

	out, err := os.CreateTemp(dir, captureFile)
	if err != nil {
		logger.WithError(err).Debug("could not create capture file")
		return UnreadableBanner(filepath.Join(dir, captureFile)), nil
	}
	path := out.Name()
	defer os.Remove(path)

	cmd := exec.CommandContext(ctx, d.launcher, "-version")
	cmd.Stderr = out
	runErr := cmd.Run()
	out.Close()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Banner{Kind: BannerNotFound}, fmt.Errorf("java probe interrupted: %w", ctxErr)
	}
	if runErr != nil {
		logger.WithError(runErr).Debug("java launcher did not complete")
		return Banner{Kind: BannerNotFound}, nil
	}

	in, err := os.Open(path)
	if err != nil {
		logger.WithError(err).Debug("could not open capture file")
		return UnreadableBanner(path), nil
	}
	defer in.Close()

	line, err := firstLine(in)
	if err != nil {
		logger.WithError(err).Debug("could not read capture file")
	}
	logger.WithField("banner", line).Debug("java banner captured")

	return BannerFromLine(line), nil
}

// BannerFromLine builds a Banner from the first line printed by the launcher.
// An empty quoted token ("") counts as no version at all.
func BannerFromLine(line string) Banner {
	token := ExtractVersionToken(line)
	if token == NotFound || token == "" {
		return Banner{Kind: BannerNotFound}
	}
	return Banner{Kind: BannerFound, text: token}
}

// UnreadableBanner reports launcher output at path that could not be opened
func UnreadableBanner(path string) Banner {
	return Banner{Kind: BannerUnreadable, text: "Unable to open file " + path}
}

// firstLine reads up to the first newline, trimming the line terminator
func firstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err == io.EOF {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}
