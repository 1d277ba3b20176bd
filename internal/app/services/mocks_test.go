package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/studentmanagement/internal/app/models"
)

type mockStudentRepository struct {
	mock.Mock
}

func (m *mockStudentRepository) FindByID(ctx context.Context, id string) (*models.Student, bool, error) {
	args := m.Called(ctx, id)
	student, _ := args.Get(0).(*models.Student)
	return student, args.Bool(1), args.Error(2)
}

func (m *mockStudentRepository) FindByCode(ctx context.Context, code string) (*models.Student, bool, error) {
	args := m.Called(ctx, code)
	student, _ := args.Get(0).(*models.Student)
	return student, args.Bool(1), args.Error(2)
}

func (m *mockStudentRepository) Insert(ctx context.Context, student *models.Student) (*models.Student, error) {
	args := m.Called(ctx, student)
	stored, _ := args.Get(0).(*models.Student)
	return stored, args.Error(1)
}

func (m *mockStudentRepository) Update(ctx context.Context, student *models.Student) (*models.Student, bool, error) {
	args := m.Called(ctx, student)
	stored, _ := args.Get(0).(*models.Student)
	return stored, args.Bool(1), args.Error(2)
}

func (m *mockStudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	args := m.Called(ctx)
	students, _ := args.Get(0).([]*models.Student)
	return students, args.Error(1)
}

func (m *mockStudentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockSubjectRepository struct {
	mock.Mock
}

func (m *mockSubjectRepository) FindByID(ctx context.Context, id int64) (*models.Subject, bool, error) {
	args := m.Called(ctx, id)
	subject, _ := args.Get(0).(*models.Subject)
	return subject, args.Bool(1), args.Error(2)
}

func (m *mockSubjectRepository) FindByStudentID(ctx context.Context, studentID string) ([]*models.Subject, error) {
	args := m.Called(ctx, studentID)
	subjects, _ := args.Get(0).([]*models.Subject)
	return subjects, args.Error(1)
}

func (m *mockSubjectRepository) Insert(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	args := m.Called(ctx, subject)
	stored, _ := args.Get(0).(*models.Subject)
	return stored, args.Error(1)
}

func (m *mockSubjectRepository) Update(ctx context.Context, subject *models.Subject) (*models.Subject, bool, error) {
	args := m.Called(ctx, subject)
	stored, _ := args.Get(0).(*models.Subject)
	return stored, args.Bool(1), args.Error(2)
}

func (m *mockSubjectRepository) ListAll(ctx context.Context) ([]*models.Subject, error) {
	args := m.Called(ctx)
	subjects, _ := args.Get(0).([]*models.Subject)
	return subjects, args.Error(1)
}
