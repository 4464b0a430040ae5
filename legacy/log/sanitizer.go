package log

import (
	"context"
	"fmt"
)

// SafeError logs err at error level. When production is true only the error's
// type is logged, keeping panic values and operands out of the output.
func SafeError(ctx context.Context, logger Logger, msg string, err error, production bool) {
	if logger == nil || err == nil {
		return
	}

	if !logger.Enabled(LevelError) {
		return
	}

	if production {
		logger.Log(ctx, LevelError, msg, String("error_type", fmt.Sprintf("%T", err)))
		return
	}

	logger.Log(ctx, LevelError, msg, Err(err))
}
