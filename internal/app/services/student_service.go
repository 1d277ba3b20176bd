package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/studentmanagement/internal/app/models/dto"
	"github.com/yigit/studentmanagement/internal/app/repositories"
	"github.com/yigit/studentmanagement/internal/pkg/apperrors"
	"github.com/yigit/studentmanagement/internal/pkg/auditlog"
	"github.com/yigit/studentmanagement/internal/pkg/logger"
	"github.com/yigit/studentmanagement/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	RegisterOrUpdate(ctx context.Context, id string, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	ListAll(ctx context.Context) ([]dto.StudentResponse, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo repositories.StudentRepository
	now         auditlog.Clock
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository, clock auditlog.Clock) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		now:         clock,
	}
}

// validateStudentRequest runs before any storage access
func validateStudentRequest(id string, req *dto.CreateStudentRequest) error {
	if !validation.NewStringValidation(id).Validate() {
		return apperrors.ErrStudentIDRequired
	}
	if req == nil || !validation.NewStringValidation(req.Code).Validate() {
		return apperrors.ErrStudentCodeRequired
	}
	if !validation.NewStringValidation(id).WithMaxLength(validation.StudentIDMaxLength).Validate() {
		return apperrors.ErrStudentIDTooLong
	}
	if !validation.NewStringValidation(req.Code).WithMaxLength(validation.CodeMaxLength).Validate() {
		return apperrors.ErrStudentCodeTooLong
	}
	return nil
}

// RegisterOrUpdate creates the student keyed by id or replaces the fields of the existing one
func (s *studentServiceImpl) RegisterOrUpdate(ctx context.Context, id string, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if err := validateStudentRequest(id, req); err != nil {
		return nil, err
	}

	existing, found, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if found {
		dto.ApplyStudentRequest(existing, req)
		existing.LogDetails = auditlog.Updated(s.now(), req.LogDetails)

		updated, stillThere, err := s.studentRepo.Update(ctx, existing)
		if err != nil {
			return nil, fmt.Errorf("error updating student: %w", err)
		}
		// removed between lookup and write
		if !stillThere {
			return nil, apperrors.ErrStudentNotFound
		}

		logger.Ctx(ctx).Info().Str("studentId", id).Msg("Student updated")
		view := dto.FromStudent(updated)
		return &view, nil
	}

	student := dto.NewStudent(id, req)
	student.LogDetails = auditlog.Created(s.now(), req.LogDetails)

	created, err := s.studentRepo.Insert(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	logger.Ctx(ctx).Info().Str("studentId", id).Msg("Student registered")
	view := dto.FromStudent(created)
	return &view, nil
}

// GetByID retrieves a student by its identifier
func (s *studentServiceImpl) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.ErrStudentIDRequired
	}

	student, found, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if !found {
		return nil, apperrors.ErrStudentNotFound
	}

	view := dto.FromStudent(student)
	return &view, nil
}

// ListAll retrieves every student
func (s *studentServiceImpl) ListAll(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return dto.FromStudents(students), nil
}
