package contextutils

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// ContextCheckResult represents the result of a context cancellation check
type ContextCheckResult struct {
	Cancelled bool
	Error     error
}

// CheckCancellation reports whether ctx is done without blocking
func CheckCancellation(ctx context.Context) ContextCheckResult {
	select {
	case <-ctx.Done():
		return ContextCheckResult{Cancelled: true, Error: ctx.Err()}
	default:
		return ContextCheckResult{}
	}
}

// CheckCancellationWithLog checks for context cancellation and logs the
// interrupted operation
func CheckCancellationWithLog(ctx context.Context, logger zerolog.Logger, operation string) ContextCheckResult {
	result := CheckCancellation(ctx)
	if result.Cancelled {
		logger.Info().Str("operation", operation).Err(result.Error).Msg("Context cancelled")
	}
	return result
}

// IsContextError reports whether err stems from cancellation or a deadline
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
