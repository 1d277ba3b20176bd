package gormrepo

import (
	"context"
	"errors"

	"github.com/yigit/studentmanagement/internal/app/models"
	"github.com/yigit/studentmanagement/internal/pkg/retry"
	"gorm.io/gorm"
)

var studentMutableColumns = []string{"code", "names", "lastnames", "birth_date", "age", "email", "log_details"}

// StudentRepository handles student persistence through gorm
type StudentRepository struct {
	db      *gorm.DB
	retrier *retry.Retrier
}

// NewStudentRepository creates a new gorm StudentRepository
func NewStudentRepository(db *gorm.DB, retrier *retry.Retrier) *StudentRepository {
	return &StudentRepository{db: db, retrier: retrier}
}

func (r *StudentRepository) findOne(ctx context.Context, op, query string, arg interface{}) (*models.Student, bool, error) {
	var student models.Student
	found := true
	err := run(ctx, r.retrier, op, func(ctx context.Context) error {
		err := r.db.WithContext(ctx).Where(query, arg).First(&student).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	})
	if err != nil || !found {
		return nil, false, err
	}
	return &student, true, nil
}

// FindByID retrieves a student by identifier
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, bool, error) {
	return r.findOne(ctx, "find student by id", "id = ?", id)
}

// FindByCode retrieves a student by business code
func (r *StudentRepository) FindByCode(ctx context.Context, code string) (*models.Student, bool, error) {
	return r.findOne(ctx, "find student by code", "code = ?", code)
}

// Insert stores a new student
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) (*models.Student, error) {
	stored := *student
	err := run(ctx, r.retrier, "insert student", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Update overwrites the mutable fields of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (*models.Student, bool, error) {
	var affected int64
	err := run(ctx, r.retrier, "update student", func(ctx context.Context) error {
		result := r.db.WithContext(ctx).
			Model(&models.Student{}).
			Where("id = ?", student.ID).
			Select(studentMutableColumns).
			Updates(student)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return nil, false, err
	}
	if affected == 0 {
		return nil, false, nil
	}
	updated := *student
	return &updated, true, nil
}

// ListAll retrieves every student
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	students := []*models.Student{}
	err := run(ctx, r.retrier, "list students", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Find(&students).Error
	})
	if err != nil {
		return nil, err
	}
	return students, nil
}

// Count returns the number of stored students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := run(ctx, r.retrier, "count students", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Model(&models.Student{}).Count(&count).Error
	})
	return count, err
}
