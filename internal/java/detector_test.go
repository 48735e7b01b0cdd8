package java

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLauncher writes an executable shell script standing in for java
func fakeLauncher(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake launchers are shell scripts")
	}

	path := filepath.Join(t.TempDir(), "java")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(new(bytes.Buffer))
	return l
}

func detect(t *testing.T, launcher string) (Banner, string) {
	t.Helper()
	scratch := t.TempDir()
	d := NewDetector(WithLauncher(launcher), WithTempDir(scratch), WithLogger(quietLogger()))

	banner, err := d.Detect(context.Background())
	require.NoError(t, err)
	return banner, scratch
}

func assertNoCaptureLeft(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "capture file was not removed")
}

func TestDetectOracleBanner(t *testing.T) {
	launcher := fakeLauncher(t, `[ "$1" = "-version" ] || exit 3
echo 'java version "17.0.2" 2022-01-18 LTS' >&2
echo 'Java(TM) SE Runtime Environment (build 17.0.2+8-LTS-86)' >&2`)

	banner, scratch := detect(t, launcher)
	assert.True(t, banner.Found())
	assert.Equal(t, BannerFound, banner.Kind)
	assert.Equal(t, "17.0.2", banner.Text())
	assertNoCaptureLeft(t, scratch)
}

func TestDetectOnlyFirstLineCounts(t *testing.T) {
	launcher := fakeLauncher(t, `echo 'Picked up JAVA_TOOL_OPTIONS: -Dfile.encoding=UTF-8' >&2
echo 'openjdk version "21.0.5" 2024-10-15' >&2`)

	banner, _ := detect(t, launcher)
	assert.False(t, banner.Found())
	assert.Equal(t, NotFound, banner.Text())
}

func TestDetectLauncherFails(t *testing.T) {
	launcher := fakeLauncher(t, `echo 'java version "17.0.2"' >&2
exit 1`)

	banner, scratch := detect(t, launcher)
	assert.Equal(t, BannerNotFound, banner.Kind)
	assert.Equal(t, NotFound, banner.Text())
	assertNoCaptureLeft(t, scratch)
}

func TestDetectLauncherMissing(t *testing.T) {
	banner, scratch := detect(t, filepath.Join(t.TempDir(), "no-such-java"))
	assert.Equal(t, BannerNotFound, banner.Kind)
	assert.Equal(t, NotFound, banner.Text())
	assertNoCaptureLeft(t, scratch)
}

func TestDetectBannerOnStdoutIsIgnored(t *testing.T) {
	launcher := fakeLauncher(t, `echo 'java version "17.0.2"'`)

	banner, _ := detect(t, launcher)
	assert.Equal(t, BannerNotFound, banner.Kind)
}

func TestDetectEmptyOutput(t *testing.T) {
	launcher := fakeLauncher(t, `exit 0`)

	banner, _ := detect(t, launcher)
	assert.Equal(t, BannerNotFound, banner.Kind)
}

func TestDetectWindowsLineEnding(t *testing.T) {
	launcher := fakeLauncher(t, `printf 'java version "11.0.2"\r\n' >&2`)

	banner, _ := detect(t, launcher)
	assert.Equal(t, "11.0.2", banner.Text())
}

func TestDetectEmptyQuotedVersion(t *testing.T) {
	launcher := fakeLauncher(t, `echo 'java version "" 2022-01-18' >&2`)

	banner, scratch := detect(t, launcher)
	assert.Equal(t, BannerNotFound, banner.Kind)
	assert.False(t, banner.Found())
	assert.Equal(t, NotFound, banner.Text())
	assertNoCaptureLeft(t, scratch)
}

func TestBannerFromLine(t *testing.T) {
	tests := []struct {
		line  string
		kind  BannerKind
		found bool
		text  string
	}{
		{line: `java version "1.8.0_381"`, kind: BannerFound, found: true, text: "1.8.0_381"},
		{line: `java version "" 2022-01-18`, kind: BannerNotFound, text: NotFound},
		{line: `java version ""`, kind: BannerNotFound, text: NotFound},
		{line: `no version here`, kind: BannerNotFound, text: NotFound},
		{line: ``, kind: BannerNotFound, text: NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			banner := BannerFromLine(tt.line)
			assert.Equal(t, tt.kind, banner.Kind)
			assert.Equal(t, tt.found, banner.Found())
			assert.Equal(t, tt.text, banner.Text())
		})
	}
}

func TestDetectUnusableTempDir(t *testing.T) {
	launcher := fakeLauncher(t, `echo 'java version "17.0.2"' >&2`)
	missing := filepath.Join(t.TempDir(), "missing")

	d := NewDetector(WithLauncher(launcher), WithTempDir(missing), WithLogger(quietLogger()))
	banner, err := d.Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BannerUnreadable, banner.Kind)
	assert.False(t, banner.Found())
	assert.True(t, strings.HasPrefix(banner.Text(), "Unable to open file "+missing), banner.Text())
}

func TestDetectHonorsContext(t *testing.T) {
	launcher := fakeLauncher(t, `exec sleep 5`)
	scratch := t.TempDir()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	d := NewDetector(WithLauncher(launcher), WithTempDir(scratch), WithLogger(quietLogger()))
	banner, err := d.Detect(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, BannerNotFound, banner.Kind)
	assertNoCaptureLeft(t, scratch)
}

func TestNewDetectorDefaults(t *testing.T) {
	d := NewDetector(WithLauncher(""))
	assert.Equal(t, DefaultLauncher, d.launcher)
	assert.NotNil(t, d.tempDir)
	assert.NotNil(t, d.logger)
}

func TestBannerZeroValue(t *testing.T) {
	assert.Equal(t, NotFound, Banner{}.Text())
	assert.False(t, Banner{}.Found())
	assert.Equal(t, NotFound, Banner{Kind: BannerNotFound}.Text())
}

func TestWithScannerRunsFunctionOnce(t *testing.T) {
	var calls int32
	out := new(bytes.Buffer)

	_ = WithScanner(out, "Checking installed Java...", func() {
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&calls, 1)
	}, tea.WithInput(nil))

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
