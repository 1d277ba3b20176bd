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

// SubjectService defines the interface for subject-related operations
type SubjectService interface {
	ListByStudentCode(ctx context.Context, studentCode string) ([]dto.SubjectResponse, error)
	AddSubject(ctx context.Context, req *dto.CreateSubjectRequest, studentID string) (*dto.SubjectResponse, error)
}

type subjectServiceImpl struct {
	subjectRepo repositories.SubjectRepository
	studentRepo repositories.StudentRepository
	now         auditlog.Clock
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(
	subjectRepo repositories.SubjectRepository,
	studentRepo repositories.StudentRepository,
	clock auditlog.Clock,
) SubjectService {
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
		studentRepo: studentRepo,
		now:         clock,
	}
}

// ListByStudentCode returns the subjects of the student holding studentCode.
// A student without subjects yields an empty list.
func (s *subjectServiceImpl) ListByStudentCode(ctx context.Context, studentCode string) ([]dto.SubjectResponse, error) {
	if strings.TrimSpace(studentCode) == "" {
		return nil, apperrors.ErrStudentCodeRequired
	}

	student, found, err := s.studentRepo.FindByCode(ctx, studentCode)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if !found {
		return nil, apperrors.ErrStudentNotFound
	}

	subjects, err := s.subjectRepo.FindByStudentID(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	return dto.FromSubjects(subjects), nil
}

// AddSubject creates a subject owned by studentID
func (s *subjectServiceImpl) AddSubject(ctx context.Context, req *dto.CreateSubjectRequest, studentID string) (*dto.SubjectResponse, error) {
	if req == nil || !validation.NewStringValidation(req.Code).Validate() {
		return nil, apperrors.ErrSubjectCodeRequired
	}
	if !validation.NewStringValidation(req.Code).WithMaxLength(validation.CodeMaxLength).Validate() {
		return nil, apperrors.ErrSubjectCodeTooLong
	}
	if !validation.NewStringValidation(studentID).Validate() {
		return nil, apperrors.ErrStudentIDRequired
	}

	_, found, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if !found {
		return nil, apperrors.ErrStudentNotFound
	}

	subject := dto.NewSubject(studentID, req)
	subject.LogDetails = auditlog.Created(s.now(), req.LogDetails)

	created, err := s.subjectRepo.Insert(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("error creating subject: %w", err)
	}

	logger.Ctx(ctx).Info().
		Str("studentId", studentID).
		Int64("subjectId", created.ID).
		Msg("Subject added")

	view := dto.FromSubject(created)
	return &view, nil
}
