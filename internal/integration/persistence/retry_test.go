// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"

	domainerror "github.com/family-finance/backend/internal/domain/error"
)

func TestClassifyStorageError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		class     domainerror.StorageFaultClass
		retryable bool
	}{
		{
			name:      "deadline exceeded is transient",
			err:       context.DeadlineExceeded,
			class:     domainerror.StorageFaultTransient,
			retryable: true,
		},
		{
			name:      "context canceled is terminal",
			err:       context.Canceled,
			class:     domainerror.StorageFaultUnknown,
			retryable: false,
		},
		{
			name:      "serialization failure is transient",
			err:       &pq.Error{Code: pq.ErrorCode(pqSerializationFailure), Message: "could not serialize access"},
			class:     domainerror.StorageFaultTransient,
			retryable: true,
		},
		{
			name:      "deadlock is transient",
			err:       &pq.Error{Code: pq.ErrorCode(pqDeadlockDetected), Message: "deadlock detected"},
			class:     domainerror.StorageFaultTransient,
			retryable: true,
		},
		{
			name:      "lock not available is transient",
			err:       &pq.Error{Code: pq.ErrorCode(pqLockNotAvailable), Message: "lock not available"},
			class:     domainerror.StorageFaultTransient,
			retryable: true,
		},
		{
			name:      "query canceled is transient",
			err:       &pq.Error{Code: pq.ErrorCode(pqQueryCanceled), Message: "canceling statement"},
			class:     domainerror.StorageFaultTransient,
			retryable: true,
		},
		{
			name:      "connection failure class is terminal connectivity",
			err:       &pq.Error{Code: "08006", Message: "connection failure"},
			class:     domainerror.StorageFaultConnectivity,
			retryable: false,
		},
		{
			name:      "rejected credentials are terminal authentication",
			err:       &pq.Error{Code: "28P01", Message: "password authentication failed"},
			class:     domainerror.StorageFaultAuthentication,
			retryable: false,
		},
		{
			name:      "missing database is terminal",
			err:       &pq.Error{Code: pq.ErrorCode(pqInvalidCatalogName), Message: "database does not exist"},
			class:     domainerror.StorageFaultUnknown,
			retryable: false,
		},
		{
			name:      "connection refused string fallback",
			err:       errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			class:     domainerror.StorageFaultConnectivity,
			retryable: false,
		},
		{
			name:      "timeout string fallback is transient",
			err:       errors.New("driver: statement timeout"),
			class:     domainerror.StorageFaultTransient,
			retryable: true,
		},
		{
			name:      "unrecognized error is terminal unknown",
			err:       errors.New("something odd"),
			class:     domainerror.StorageFaultUnknown,
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyStorageError(tt.err)
			if classified.Class != tt.class {
				t.Errorf("expected class %s, got %s", tt.class, classified.Class)
			}
			if classified.Retryable != tt.retryable {
				t.Errorf("expected retryable %v, got %v", tt.retryable, classified.Retryable)
			}
			if !errors.Is(classified, tt.err) {
				t.Error("expected the original error to remain unwrappable")
			}
		})
	}

	t.Run("existing storage error passes through unchanged", func(t *testing.T) {
		original := domainerror.NewStorageError(domainerror.StorageFaultTransient, "already classified", true, nil)
		if classifyStorageError(original) != original {
			t.Error("expected the same StorageError instance back")
		}
	})
}

func TestWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("successful operation runs once", func(t *testing.T) {
		calls := 0
		result, err := withRetry(ctx, "test.op", func() (int, error) {
			calls++
			return 42, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != 42 {
			t.Errorf("expected 42, got %d", result)
		}
		if calls != 1 {
			t.Errorf("expected one call, got %d", calls)
		}
	})

	t.Run("terminal fault is not retried", func(t *testing.T) {
		calls := 0
		_, err := withRetry(ctx, "test.op", func() (int, error) {
			calls++
			return 0, &pq.Error{Code: "28P01", Message: "password authentication failed"}
		})

		var storageErr *domainerror.StorageError
		if !errors.As(err, &storageErr) {
			t.Fatalf("expected StorageError, got %v", err)
		}
		if storageErr.Class != domainerror.StorageFaultAuthentication {
			t.Errorf("expected authentication fault, got %s", storageErr.Class)
		}
		if calls != 1 {
			t.Errorf("expected one call, got %d", calls)
		}
	})

	t.Run("canceled context stops the backoff", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		_, err := withRetry(canceled, "test.op", func() (int, error) {
			calls++
			return 0, &pq.Error{Code: pq.ErrorCode(pqDeadlockDetected), Message: "deadlock detected"}
		})

		var storageErr *domainerror.StorageError
		if !errors.As(err, &storageErr) {
			t.Fatalf("expected StorageError, got %v", err)
		}
		if calls != 1 {
			t.Errorf("expected a single attempt before the canceled backoff, got %d", calls)
		}
	})

	t.Run("retryVoid adapts error-only operations", func(t *testing.T) {
		if err := retryVoid(ctx, "test.op", func() error { return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := retryVoid(ctx, "test.op", func() error {
			return &pq.Error{Code: "28P01", Message: "password authentication failed"}
		})
		var storageErr *domainerror.StorageError
		if !errors.As(err, &storageErr) {
			t.Fatalf("expected StorageError, got %v", err)
		}
	})
}
