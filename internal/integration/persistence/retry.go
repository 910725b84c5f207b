// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/lib/pq"

	domainerror "github.com/family-finance/backend/internal/domain/error"
)

const (
	maxRetries = 3
	baseDelay  = 2 * time.Second
)

// Postgres error codes classified as transient. Retrying these after a
// backoff has a realistic chance of succeeding.
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqLockNotAvailable     = "55P03"
	pqQueryCanceled        = "57014"
)

// Postgres error code for a missing database. Grouped with the
// unrecoverable faults because retrying cannot create the database.
const pqInvalidCatalogName = "3D000"

// classifyStorageError maps a driver error onto a StorageError. Transient
// faults are marked retryable; connectivity and authentication faults are
// terminal because backing off does not fix a bad address or credential.
func classifyStorageError(err error) *domainerror.StorageError {
	var storageErr *domainerror.StorageError
	if errors.As(err, &storageErr) {
		return storageErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domainerror.NewStorageError(
			domainerror.StorageFaultTransient,
			"database operation timed out",
			true,
			err,
		)
	}
	if errors.Is(err, context.Canceled) {
		return domainerror.NewStorageError(
			domainerror.StorageFaultUnknown,
			"database operation canceled",
			false,
			err,
		)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		switch {
		case code == pqSerializationFailure, code == pqDeadlockDetected,
			code == pqLockNotAvailable, code == pqQueryCanceled:
			return domainerror.NewStorageError(
				domainerror.StorageFaultTransient,
				"transient database fault: "+pqErr.Message,
				true,
				err,
			)
		case strings.HasPrefix(code, "08"):
			return domainerror.NewStorageError(
				domainerror.StorageFaultConnectivity,
				"database server unreachable: "+pqErr.Message,
				false,
				err,
			)
		case strings.HasPrefix(code, "28"):
			return domainerror.NewStorageError(
				domainerror.StorageFaultAuthentication,
				"database rejected credentials: "+pqErr.Message,
				false,
				err,
			)
		case code == pqInvalidCatalogName:
			return domainerror.NewStorageError(
				domainerror.StorageFaultUnknown,
				"database does not exist: "+pqErr.Message,
				false,
				err,
			)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return domainerror.NewStorageError(
				domainerror.StorageFaultTransient,
				"network timeout reaching database",
				true,
				err,
			)
		}
		return domainerror.NewStorageError(
			domainerror.StorageFaultConnectivity,
			"network failure reaching database",
			false,
			err,
		)
	}

	// Driver-dependent fallbacks where no typed error is available.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadlock"):
		return domainerror.NewStorageError(
			domainerror.StorageFaultTransient,
			"transient database fault",
			true,
			err,
		)
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "no such host"):
		return domainerror.NewStorageError(
			domainerror.StorageFaultConnectivity,
			"database server unreachable",
			false,
			err,
		)
	}

	return domainerror.NewStorageError(
		domainerror.StorageFaultUnknown,
		"database operation failed",
		false,
		err,
	)
}

// withRetry runs op, retrying transient faults up to maxRetries times
// with exponential backoff. Terminal faults surface immediately as
// StorageError. The backoff sleep honors context cancellation.
func withRetry[T any](ctx context.Context, operation string, op func() (T, error)) (T, error) {
	var zero T
	delay := baseDelay

	for attempt := 1; ; attempt++ {
		result, err := op()
		if err == nil {
			return result, nil
		}

		classified := classifyStorageError(err)
		if !classified.Retryable || attempt > maxRetries {
			return zero, classified
		}

		slog.Warn("Retrying database operation after transient fault",
			"operation", operation,
			"attempt", attempt,
			"delay", delay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return zero, classifyStorageError(ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// retryVoid adapts withRetry for operations without a result value.
func retryVoid(ctx context.Context, operation string, op func() error) error {
	_, err := withRetry(ctx, operation, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}
