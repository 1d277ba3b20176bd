package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/studentmanagement/internal/app/models"
	"github.com/yigit/studentmanagement/internal/pkg/logger"
	"github.com/yigit/studentmanagement/internal/pkg/retry"
)

var studentColumns = []string{"id", "code", "names", "lastnames", "birth_date", "age", "email", "log_details"}

// PgStudentRepository handles student database operations on PostgreSQL
type PgStudentRepository struct {
	db      Querier
	sb      squirrel.StatementBuilderType
	retrier *retry.Retrier
}

// NewPgStudentRepository creates a new PgStudentRepository
func NewPgStudentRepository(db Querier, retrier *retry.Retrier) *PgStudentRepository {
	return &PgStudentRepository{
		db:      db,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		retrier: retrier,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.Code, &s.Names, &s.Lastnames, &s.BirthDate, &s.Age, &s.Email, &s.LogDetails)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// findOne runs a single-row select with the given predicate
func (r *PgStudentRepository) findOne(ctx context.Context, op string, where squirrel.Eq) (*models.Student, bool, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("op", op).Msg("Error building student select SQL")
		return nil, false, translateError(op, err)
	}

	var student *models.Student
	found := true
	err = r.retrier.Do(ctx, func(ctx context.Context) error {
		s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
		if isNoRows(err) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		student = s
		return nil
	})
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Interface("where", where).Msg("Error querying student")
		return nil, false, translateError(op, err)
	}

	return student, found, nil
}

// FindByID retrieves a student by identifier
func (r *PgStudentRepository) FindByID(ctx context.Context, id string) (*models.Student, bool, error) {
	return r.findOne(ctx, "find student by id", squirrel.Eq{"id": id})
}

// FindByCode retrieves a student by business code
func (r *PgStudentRepository) FindByCode(ctx context.Context, code string) (*models.Student, bool, error) {
	return r.findOne(ctx, "find student by code", squirrel.Eq{"code": code})
}

// Insert stores a new student and returns the stored row
func (r *PgStudentRepository) Insert(ctx context.Context, student *models.Student) (*models.Student, error) {
	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(student.ID, student.Code, student.Names, student.Lastnames, student.BirthDate,
			student.Age, student.Email, student.LogDetails).
		Suffix("RETURNING " + joinColumns(studentColumns)).
		ToSql()
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error building insert student SQL")
		return nil, translateError("insert student", err)
	}

	stored, err := retry.DoWithData(ctx, r.retrier, func(ctx context.Context) (*models.Student, error) {
		return scanStudent(r.db.QueryRow(ctx, sql, args...))
	})
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("studentID", student.ID).Str("code", student.Code).Msg("Error executing insert student query")
		return nil, translateError("insert student", err)
	}

	logger.Ctx(ctx).Info().Str("studentID", stored.ID).Str("code", stored.Code).Msg("Student inserted")
	return stored, nil
}

// Update overwrites the mutable fields of an existing student
func (r *PgStudentRepository) Update(ctx context.Context, student *models.Student) (*models.Student, bool, error) {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"code":        student.Code,
			"names":       student.Names,
			"lastnames":   student.Lastnames,
			"birth_date":  student.BirthDate,
			"age":         student.Age,
			"email":       student.Email,
			"log_details": student.LogDetails,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		Suffix("RETURNING " + joinColumns(studentColumns)).
		ToSql()
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error building update student SQL")
		return nil, false, translateError("update student", err)
	}

	var updated *models.Student
	found := true
	err = r.retrier.Do(ctx, func(ctx context.Context) error {
		s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
		if isNoRows(err) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("studentID", student.ID).Msg("Error executing update student query")
		return nil, false, translateError("update student", err)
	}

	return updated, found, nil
}

// ListAll retrieves every student in storage order
func (r *PgStudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").ToSql()
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error building list students SQL")
		return nil, translateError("list students", err)
	}

	students, err := retry.DoWithData(ctx, r.retrier, func(ctx context.Context) ([]*models.Student, error) {
		rows, err := r.db.Query(ctx, sql, args...)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		students := []*models.Student{}
		for rows.Next() {
			s, err := scanStudent(rows)
			if err != nil {
				return nil, err
			}
			students = append(students, s)
		}
		return students, rows.Err()
	})
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error listing students")
		return nil, translateError("list students", err)
	}

	return students, nil
}

// Count returns the number of stored students
func (r *PgStudentRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("students").ToSql()
	if err != nil {
		return 0, translateError("count students", err)
	}

	count, err := retry.DoWithData(ctx, r.retrier, func(ctx context.Context) (int64, error) {
		var n int64
		err := r.db.QueryRow(ctx, sql, args...).Scan(&n)
		return n, err
	})
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error counting students")
		return 0, translateError("count students", err)
	}
	return count, nil
}
