package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// writerFor wraps out so events are rendered in format. Colour is only
// used on the console.
func writerFor(format Format, out io.Writer, colour bool) io.Writer {
	switch format {
	case FormatJSON:
		return out
	case FormatText:
		colour = false
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !colour,
	}
}

// rotatingFile opens a lumberjack sink for opts.FilePath, creating its
// directory when needed.
func rotatingFile(opts Options) io.Writer {
	// lumberjack reports a failed mkdir on first write.
	_ = os.MkdirAll(filepath.Dir(opts.FilePath), 0755)

	return &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		LocalTime:  true,
	}
}
