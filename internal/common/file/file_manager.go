package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/aleister1102/paramindex/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// FileManager reads documents and config files within size and time
// ceilings, wrapping every failure with the path involved.
type FileManager struct {
	logger zerolog.Logger
}

// NewFileManager creates a new FileManager instance
func NewFileManager(logger zerolog.Logger) *FileManager {
	return &FileManager{
		logger: logger.With().Str("component", "FileManager").Logger(),
	}
}

// FileExists reports whether path names an existing file or directory.
func (fm *FileManager) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// ReadFile checks path is a regular file below opts.MaxSize, then reads it.
func (fm *FileManager) ReadFile(path string, opts FileReadOptions) ([]byte, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("cannot stat %s", path))
	}
	if stat.IsDir() {
		return nil, errorwrapper.NewValidationError("path", path, "is a directory, not a file")
	}
	if opts.MaxSize > 0 && stat.Size() > opts.MaxSize {
		fm.logger.Warn().Str("path", path).Int64("size", stat.Size()).Int64("max_size", opts.MaxSize).Msg("File exceeds size limit")
		return nil, errorwrapper.WrapError(errorwrapper.ErrTooLarge, fmt.Sprintf("%s is %d bytes, limit is %d", path, stat.Size(), opts.MaxSize))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("cannot open %s", path))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fm.logger.Error().Err(cerr).Str("path", path).Msg("Failed to close file")
		}
	}()

	return fm.ReadAll(path, f, opts)
}

// ReadAll drains r within opts. name labels logs and errors only. A stream
// longer than opts.MaxSize fails with ErrTooLarge instead of being cut.
func (fm *FileManager) ReadAll(name string, r io.Reader, opts FileReadOptions) ([]byte, error) {
	ctx, cancel := opts.context()
	defer cancel()

	if opts.BufferSize > 0 {
		r = bufio.NewReaderSize(r, opts.BufferSize)
	}

	type result struct {
		content []byte
		err     error
	}
	done := make(chan result, 1)
	go func() {
		content, err := readLimited(r, opts.MaxSize)
		done <- result{content: content, err: err}
	}()

	select {
	case <-ctx.Done():
		fm.logger.Warn().Str("source", name).Err(ctx.Err()).Msg("Read abandoned")
		return nil, errorwrapper.WrapError(ctx.Err(), fmt.Sprintf("reading %s cancelled", name))
	case res := <-done:
		if res.err != nil {
			return nil, errorwrapper.WrapError(res.err, fmt.Sprintf("cannot read %s", name))
		}
		fm.logger.Debug().Str("source", name).Int("bytes", len(res.content)).Msg("Read complete")
		return res.content, nil
	}
}

func readLimited(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		return io.ReadAll(r)
	}
	content, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > maxSize {
		return nil, errorwrapper.WrapError(errorwrapper.ErrTooLarge, fmt.Sprintf("limit is %d bytes", maxSize))
	}
	return content, nil
}
