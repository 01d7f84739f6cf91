package database

import (
	"errors"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/logger"
)

const maxTxAttempts = 5

// SQLSTATE codes for which re-running the whole transaction is safe.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// RunInTx runs fn inside a database transaction. When the database aborts the
// transaction with a serialization failure or a deadlock the whole unit is
// retried from the start, so fn must not have effects outside tx. Errors that
// are not already *AppError are reported as ErrStorage.
func RunInTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.Transaction(fn)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) || attempt == maxTxAttempts {
			break
		}
		logger.Named("database").Warnw("retrying aborted transaction", "attempt", attempt, "error", err)
		sleepWithBackoff(attempt)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrStorage, err)
}

// IsRetryable reports whether err is a transient PostgreSQL conflict. Both the
// pgx driver used by GORM and lib/pq used by golang-migrate are recognized.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == sqlStateSerializationFailure || pqErr.Code == sqlStateDeadlockDetected
	}
	return false
}

func sleepWithBackoff(attempt int) {
	base := 20 * time.Millisecond
	backoff := time.Duration(attempt*attempt) * base
	jitter := time.Duration(rand.Int63n(int64(10 * time.Millisecond)))
	time.Sleep(backoff + jitter)
}
