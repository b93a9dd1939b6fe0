package logger

import (
	"io"
	stdlog "log"
	"os"

	"github.com/aleister1102/paramindex/internal/config"
	"github.com/rs/zerolog"
)

// Builder assembles a zerolog.Logger writing to the console and, when a
// log file is configured, to a rotated file.
type Builder struct {
	opts    Options
	optsErr error
	console io.Writer
}

// NewBuilder creates a builder with default options and stderr as console.
func NewBuilder() *Builder {
	opts, _ := OptionsFromConfig(config.NewDefaultLogConfig())
	return &Builder{opts: opts, console: os.Stderr}
}

// WithConfig applies cfg. A bad level is kept and reported by Build.
func (b *Builder) WithConfig(cfg config.LogConfig) *Builder {
	b.opts, b.optsErr = OptionsFromConfig(cfg)
	return b
}

// WithConsole redirects console output, mainly for tests.
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.console = w
	return b
}

// Options returns the resolved options.
func (b *Builder) Options() Options {
	return b.opts
}

// Build creates the logger and routes the standard log package through it.
func (b *Builder) Build() (zerolog.Logger, error) {
	if b.optsErr != nil {
		return zerolog.Logger{}, b.optsErr
	}

	writers := []io.Writer{writerFor(b.opts.Format, b.console, true)}
	if b.opts.FileEnabled() {
		writers = append(writers, writerFor(b.opts.Format, rotatingFile(b.opts), false))
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(b.opts.Level).
		With().
		Timestamp().
		Logger()

	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)
	return logger, nil
}

// New creates the application logger from cfg.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewBuilder().WithConfig(cfg).Build()
}
