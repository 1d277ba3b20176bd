package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/studentmanagement/internal/pkg/apperrors"
	"github.com/yigit/studentmanagement/internal/pkg/dberrors"
	"github.com/yigit/studentmanagement/internal/pkg/logger"
	"github.com/yigit/studentmanagement/internal/pkg/retry"
)

// NewStorageRetrier returns the retry policy applied to every gateway call:
// only transient connectivity failures are retried.
func NewStorageRetrier(maxAttempts int, initialDelay, maxDelay time.Duration) *retry.Retrier {
	return retry.New(
		retry.WithMaxAttempts(maxAttempts),
		retry.WithInitialDelay(initialDelay),
		retry.WithMaxDelay(maxDelay),
		retry.WithMultiplier(2.0),
		retry.WithJitter(0.1),
		retry.WithRetryIf(dberrors.IsTransient),
		retry.WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Warn().Err(err).Int("attempt", attempt).Dur("delay", delay).Msg("Transient storage failure, retrying")
		}),
	)
}

// Unique constraints on the students table, see db.EnsureSchema
const (
	studentsPrimaryKey = "students_pkey"
	studentsCodeKey    = "students_code_key"
	studentsEmailKey   = "students_email_key"
)

// uniqueConflict picks the conflict reported for the violated constraint
func uniqueConflict(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, studentsPrimaryKey):
		return apperrors.ErrStudentIDConflict
	case dberrors.IsDuplicateConstraintError(err, studentsCodeKey):
		return apperrors.ErrStudentCodeConflict
	case dberrors.IsDuplicateConstraintError(err, studentsEmailKey):
		return apperrors.ErrStudentEmailConflict
	default:
		return apperrors.ErrStudentConflict
	}
}

// translateError maps a driver error onto the application taxonomy.
// Unique violations become conflicts, foreign key violations a missing student,
// and everything else a storage error that keeps the driver error in its chain.
func translateError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case dberrors.IsDuplicateKeyError(err):
		return uniqueConflict(err)
	case dberrors.IsForeignKeyError(err):
		return apperrors.ErrStudentNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %s: %w", apperrors.ErrStorage, op, err)
	}
}

// isNoRows reports whether err is pgx's empty result error
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
