package file

import (
	"context"
	"time"
)

const (
	defaultMaxReadSize = 50 * 1024 * 1024
	defaultBufferSize  = 64 * 1024
	defaultReadTimeout = 30 * time.Second
)

// FileReadOptions bounds a single read.
type FileReadOptions struct {
	MaxSize    int64           // bytes; 0 disables the ceiling
	BufferSize int             // 0 reads unbuffered
	Timeout    time.Duration   // 0 disables the deadline
	Context    context.Context // nil means context.Background()
}

// DefaultFileReadOptions returns the ceilings used when a caller has no
// configuration of its own.
func DefaultFileReadOptions() FileReadOptions {
	return FileReadOptions{
		MaxSize:    defaultMaxReadSize,
		BufferSize: defaultBufferSize,
		Timeout:    defaultReadTimeout,
		Context:    context.Background(),
	}
}

func (o FileReadOptions) context() (context.Context, context.CancelFunc) {
	ctx := o.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if o.Timeout > 0 {
		return context.WithTimeout(ctx, o.Timeout)
	}
	return context.WithCancel(ctx)
}
