package handler

import (
	"context"
	"errors"
	"io"
	"time"

	ulog "github.com/LerianStudio/lib-uncommons/v2/uncommons/log"
)

// logged wraps a console operation with an audit log entry carrying the
// operation name, outcome and duration. Failures stay at warn level: every
// rejection here is a recoverable, operator-visible outcome.
func (c *Console) logged(ctx context.Context, name string, op func() error) error {
	start := time.Now()
	err := op()

	fields := []ulog.Field{
		ulog.String("operation", name),
		ulog.String("duration", time.Since(start).String()),
	}

	switch {
	case err == nil:
		c.logger.Log(ctx, ulog.LevelInfo, "operation completed", fields...)
	case errors.Is(err, io.EOF):
		// input ran out mid-operation; the loop terminates, nothing to report
	default:
		c.logger.Log(ctx, ulog.LevelWarn, "operation failed", append(fields, ulog.Err(err))...)
	}

	return err
}
