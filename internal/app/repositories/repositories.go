package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/studentmanagement/internal/app/models"
	"github.com/yigit/studentmanagement/internal/pkg/retry"
)

// StudentRepository is the persistence gateway for students.
// Lookups report absence through the found flag, never through an error.
type StudentRepository interface {
	FindByID(ctx context.Context, id string) (student *models.Student, found bool, err error)
	FindByCode(ctx context.Context, code string) (student *models.Student, found bool, err error)
	Insert(ctx context.Context, student *models.Student) (*models.Student, error)
	// Update overwrites every mutable field of the stored record; found is false when no
	// record has student.ID, in which case nothing is written.
	Update(ctx context.Context, student *models.Student) (updated *models.Student, found bool, err error)
	ListAll(ctx context.Context) ([]*models.Student, error)
	Count(ctx context.Context) (int64, error)
}

// SubjectRepository is the persistence gateway for subjects
type SubjectRepository interface {
	FindByID(ctx context.Context, id int64) (subject *models.Subject, found bool, err error)
	FindByStudentID(ctx context.Context, studentID string) ([]*models.Subject, error)
	Insert(ctx context.Context, subject *models.Subject) (*models.Subject, error)
	Update(ctx context.Context, subject *models.Subject) (updated *models.Subject, found bool, err error)
	ListAll(ctx context.Context) ([]*models.Subject, error)
}

// Querier is the part of *pgxpool.Pool the PostgreSQL gateways run statements through
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository StudentRepository
	SubjectRepository SubjectRepository
}

// NewRepositories initializes the PostgreSQL repositories sharing one retry policy
func NewRepositories(db Querier, retrier *retry.Retrier) *Repositories {
	return &Repositories{
		StudentRepository: NewPgStudentRepository(db, retrier),
		SubjectRepository: NewPgSubjectRepository(db, retrier),
	}
}
