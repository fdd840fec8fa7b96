package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/terminus/internal/config"
	"github.com/footprint-tools/terminus/internal/domain"
	"github.com/footprint-tools/terminus/internal/log"
	"github.com/footprint-tools/terminus/internal/output"
	"github.com/footprint-tools/terminus/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	// IsTerminal reports whether w is attached to a terminal. It decides
	// colorize: auto.
	IsTerminal func(w io.Writer) bool

	// Logger replaces the logger built from log_level and log_file.
	// No log file is opened when it is set.
	Logger domain.Logger
}

// DefaultOptions returns options bound to the process streams.
func DefaultOptions() Options {
	return Options{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		IsTerminal: IsTerminal,
	}
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// New creates an Application from the merged configuration.
func New(res *config.Result, opts Options) *domain.Application {
	colorize := ShouldColorize(res.Config.String(domain.KeyColorize, "auto"), opts)
	style.Init(colorize)

	formatter := output.FormatterFor(res.Config.String(domain.KeyFormat, "pretty"), style.NewStyler())

	return &domain.Application{
		Config: res.Config,
		Extra:  res.Extra,
		Files:  res.Files,
		Logger: newLogger(res.Config, opts),
		Output: output.New(opts.Stdout, formatter),
		Stdout: opts.Stdout,
	}
}

// newLogger returns opts.Logger or a stderr logger at log_level. A log
// file that cannot be opened is reported as a warning; the run continues
// with stderr logging only.
func newLogger(cfg domain.Values, opts Options) domain.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}

	logger := log.New(opts.Stderr, log.ParseLevel(cfg.String(domain.KeyLogLevel, "warn")))
	if path := cfg.String(domain.KeyLogFile, ""); path != "" {
		if err := logger.OpenFile(path); err != nil {
			logger.Warn("%v", err)
		}
	}
	return logger
}

// ShouldColorize interprets the colorize setting. "auto" and unrecognised
// values defer to terminal detection on stdout.
func ShouldColorize(setting string, opts Options) bool {
	switch strings.ToLower(setting) {
	case "true", "yes", "always", "1":
		return true
	case "false", "no", "never", "0":
		return false
	}
	if opts.IsTerminal == nil {
		return false
	}
	return opts.IsTerminal(opts.Stdout)
}

// NewForTesting creates an Application with default config that writes
// unstyled output to stdout and discards log messages.
func NewForTesting(stdout io.Writer) *domain.Application {
	return &domain.Application{
		Config: domain.DefaultValues(),
		Extra:  map[string]domain.Values{},
		Logger: log.NopLogger{},
		Output: output.New(stdout, output.PrettyFormatter{Styler: style.NopStyler{}}),
		Stdout: stdout,
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app == nil || app.Logger == nil {
		return nil
	}
	if err := app.Logger.Close(); err != nil {
		return fmt.Errorf("close logger: %w", err)
	}
	return nil
}
