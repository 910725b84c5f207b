// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/family-finance/backend/internal/application/adapter"
)

type txContextKey struct{}

// dbFromContext returns the transaction handle carried by ctx, falling
// back to the repository's own handle when no transaction is open.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

// transactionManager implements adapter.TransactionManager on gorm.
// A mutex serializes commits so that concurrent commands from different
// API requests cannot interleave their multi-table writes.
type transactionManager struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewTransactionManager creates a new transaction manager instance.
func NewTransactionManager(db *gorm.DB) adapter.TransactionManager {
	return &transactionManager{db: db}
}

// WithinTransaction runs fn inside one database transaction. The
// transaction handle travels in the context, so repositories invoked by
// fn join the same transaction automatically.
func (m *transactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}
