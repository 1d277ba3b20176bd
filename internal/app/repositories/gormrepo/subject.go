package gormrepo

import (
	"context"
	"errors"

	"github.com/yigit/studentmanagement/internal/app/models"
	"github.com/yigit/studentmanagement/internal/pkg/retry"
	"gorm.io/gorm"
)

var subjectMutableColumns = []string{"code", "name", "instructor", "schedule", "location", "log_details", "student_id"}

// SubjectRepository handles subject persistence through gorm
type SubjectRepository struct {
	db      *gorm.DB
	retrier *retry.Retrier
}

// NewSubjectRepository creates a new gorm SubjectRepository
func NewSubjectRepository(db *gorm.DB, retrier *retry.Retrier) *SubjectRepository {
	return &SubjectRepository{db: db, retrier: retrier}
}

// FindByID retrieves a subject by identifier
func (r *SubjectRepository) FindByID(ctx context.Context, id int64) (*models.Subject, bool, error) {
	var subject models.Subject
	found := true
	err := run(ctx, r.retrier, "find subject by id", func(ctx context.Context) error {
		err := r.db.WithContext(ctx).First(&subject, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	})
	if err != nil || !found {
		return nil, false, err
	}
	return &subject, true, nil
}

// FindByStudentID retrieves every subject owned by a student
func (r *SubjectRepository) FindByStudentID(ctx context.Context, studentID string) ([]*models.Subject, error) {
	subjects := []*models.Subject{}
	err := run(ctx, r.retrier, "find subjects by student", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("student_id = ?", studentID).Order("id ASC").Find(&subjects).Error
	})
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// Insert stores a new subject; gorm fills in the generated identifier
func (r *SubjectRepository) Insert(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	stored := *subject
	stored.ID = 0
	stored.Student = nil
	err := run(ctx, r.retrier, "insert subject", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Update overwrites the mutable fields of an existing subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) (*models.Subject, bool, error) {
	var affected int64
	err := run(ctx, r.retrier, "update subject", func(ctx context.Context) error {
		result := r.db.WithContext(ctx).
			Model(&models.Subject{}).
			Where("id = ?", subject.ID).
			Select(subjectMutableColumns).
			Updates(subject)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return nil, false, err
	}
	if affected == 0 {
		return nil, false, nil
	}
	updated := *subject
	updated.Student = nil
	return &updated, true, nil
}

// ListAll retrieves every subject
func (r *SubjectRepository) ListAll(ctx context.Context) ([]*models.Subject, error) {
	subjects := []*models.Subject{}
	err := run(ctx, r.retrier, "list subjects", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Find(&subjects).Error
	})
	if err != nil {
		return nil, err
	}
	return subjects, nil
}
