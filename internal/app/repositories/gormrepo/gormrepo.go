// Package gormrepo implements the persistence gateway with gorm, used with the
// sqlite driver for single-node deployments and tests.
package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/studentmanagement/internal/app/repositories"
	"github.com/yigit/studentmanagement/internal/pkg/apperrors"
	"github.com/yigit/studentmanagement/internal/pkg/logger"
	"github.com/yigit/studentmanagement/internal/pkg/retry"
	"gorm.io/gorm"
)

// NewRepositories initializes the gorm repositories sharing one retry policy
func NewRepositories(db *gorm.DB, retrier *retry.Retrier) *repositories.Repositories {
	return &repositories.Repositories{
		StudentRepository: NewStudentRepository(db, retrier),
		SubjectRepository: NewSubjectRepository(db, retrier),
	}
}

// studentUniqueColumns maps the column sqlite names in a unique violation to its conflict
var studentUniqueColumns = map[string]error{
	"students.id":    apperrors.ErrStudentIDConflict,
	"students.code":  apperrors.ErrStudentCodeConflict,
	"students.email": apperrors.ErrStudentEmailConflict,
}

// uniqueConflict picks the conflict for a sqlite unique violation message such as
// "UNIQUE constraint failed: students.email"
func uniqueConflict(msg string) error {
	_, column, found := strings.Cut(msg, "UNIQUE constraint failed: ")
	if found {
		if conflict, ok := studentUniqueColumns[strings.TrimSpace(column)]; ok {
			return conflict
		}
	}
	return apperrors.ErrStudentConflict
}

// translateError maps gorm/driver errors onto the application taxonomy
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return uniqueConflict(msg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrStudentConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated), strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return apperrors.ErrStudentNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %s: %w", apperrors.ErrStorage, op, err)
	}
}

// run executes fn under the retry policy and translates the final error
func run(ctx context.Context, retrier *retry.Retrier, op string, fn func(ctx context.Context) error) error {
	if err := retrier.Do(ctx, fn); err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("op", op).Msg("Storage operation failed")
		return translateError(op, err)
	}
	return nil
}
