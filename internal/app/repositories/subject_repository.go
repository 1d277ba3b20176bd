package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/studentmanagement/internal/app/models"
	"github.com/yigit/studentmanagement/internal/pkg/logger"
	"github.com/yigit/studentmanagement/internal/pkg/retry"
)

var subjectColumns = []string{"id", "code", "name", "instructor", "schedule", "location", "log_details", "student_id"}

// PgSubjectRepository handles subject database operations on PostgreSQL
type PgSubjectRepository struct {
	db      Querier
	sb      squirrel.StatementBuilderType
	retrier *retry.Retrier
}

// NewPgSubjectRepository creates a new PgSubjectRepository
func NewPgSubjectRepository(db Querier, retrier *retry.Retrier) *PgSubjectRepository {
	return &PgSubjectRepository{
		db:      db,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		retrier: retrier,
	}
}

func scanSubject(row pgx.Row) (*models.Subject, error) {
	s := &models.Subject{}
	err := row.Scan(&s.ID, &s.Code, &s.Name, &s.Instructor, &s.Schedule, &s.Location, &s.LogDetails, &s.StudentID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// query runs a multi-row select and scans every subject
func (r *PgSubjectRepository) query(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*models.Subject, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("op", op).Msg("Error building subject select SQL")
		return nil, translateError(op, err)
	}

	subjects, err := retry.DoWithData(ctx, r.retrier, func(ctx context.Context) ([]*models.Subject, error) {
		rows, err := r.db.Query(ctx, sql, args...)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		subjects := []*models.Subject{}
		for rows.Next() {
			s, err := scanSubject(rows)
			if err != nil {
				return nil, err
			}
			subjects = append(subjects, s)
		}
		return subjects, rows.Err()
	})
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("op", op).Msg("Error querying subjects")
		return nil, translateError(op, err)
	}
	return subjects, nil
}

// FindByID retrieves a subject by its generated identifier
func (r *PgSubjectRepository) FindByID(ctx context.Context, id int64) (*models.Subject, bool, error) {
	subjects, err := r.query(ctx, "find subject by id",
		r.sb.Select(subjectColumns...).From("subjects").Where(squirrel.Eq{"id": id}).Limit(1))
	if err != nil {
		return nil, false, err
	}
	if len(subjects) == 0 {
		return nil, false, nil
	}
	return subjects[0], true, nil
}

// FindByStudentID retrieves every subject owned by a student
func (r *PgSubjectRepository) FindByStudentID(ctx context.Context, studentID string) ([]*models.Subject, error) {
	return r.query(ctx, "find subjects by student",
		r.sb.Select(subjectColumns...).From("subjects").Where(squirrel.Eq{"student_id": studentID}).OrderBy("id ASC"))
}

// ListAll retrieves every subject
func (r *PgSubjectRepository) ListAll(ctx context.Context) ([]*models.Subject, error) {
	return r.query(ctx, "list subjects", r.sb.Select(subjectColumns...).From("subjects"))
}

// Insert stores a new subject; the identifier is assigned by the database
func (r *PgSubjectRepository) Insert(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	sql, args, err := r.sb.Insert("subjects").
		Columns("code", "name", "instructor", "schedule", "location", "log_details", "student_id").
		Values(subject.Code, subject.Name, subject.Instructor, subject.Schedule, subject.Location,
			subject.LogDetails, subject.StudentID).
		Suffix("RETURNING " + joinColumns(subjectColumns)).
		ToSql()
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error building insert subject SQL")
		return nil, translateError("insert subject", err)
	}

	stored, err := retry.DoWithData(ctx, r.retrier, func(ctx context.Context) (*models.Subject, error) {
		return scanSubject(r.db.QueryRow(ctx, sql, args...))
	})
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("studentID", subject.StudentID).Str("code", subject.Code).Msg("Error executing insert subject query")
		return nil, translateError("insert subject", err)
	}

	logger.Ctx(ctx).Info().Int64("subjectID", stored.ID).Str("studentID", stored.StudentID).Msg("Subject inserted")
	return stored, nil
}

// Update overwrites the mutable fields of an existing subject
func (r *PgSubjectRepository) Update(ctx context.Context, subject *models.Subject) (*models.Subject, bool, error) {
	sql, args, err := r.sb.Update("subjects").
		SetMap(map[string]interface{}{
			"code":        subject.Code,
			"name":        subject.Name,
			"instructor":  subject.Instructor,
			"schedule":    subject.Schedule,
			"location":    subject.Location,
			"log_details": subject.LogDetails,
			"student_id":  subject.StudentID,
		}).
		Where(squirrel.Eq{"id": subject.ID}).
		Suffix("RETURNING " + joinColumns(subjectColumns)).
		ToSql()
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("Error building update subject SQL")
		return nil, false, translateError("update subject", err)
	}

	var updated *models.Subject
	found := true
	err = r.retrier.Do(ctx, func(ctx context.Context) error {
		s, err := scanSubject(r.db.QueryRow(ctx, sql, args...))
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
		logger.Ctx(ctx).Error().Err(err).Int64("subjectID", subject.ID).Msg("Error executing update subject query")
		return nil, false, translateError("update subject", err)
	}

	return updated, found, nil
}
