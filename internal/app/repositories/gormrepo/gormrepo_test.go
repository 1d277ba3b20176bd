package gormrepo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentmanagement/internal/app/models"
	"github.com/yigit/studentmanagement/internal/app/repositories"
	"github.com/yigit/studentmanagement/internal/db"
	"github.com/yigit/studentmanagement/internal/pkg/apperrors"
	"gorm.io/gorm"
)

var (
	_ repositories.StudentRepository = (*StudentRepository)(nil)
	_ repositories.SubjectRepository = (*SubjectRepository)(nil)
)

func setupRepos(t *testing.T) (*StudentRepository, *SubjectRepository) {
	t.Helper()
	gdb, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "students.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.CloseSQLiteDB(gdb) })

	retrier := repositories.NewStorageRetrier(1, 0, time.Second)
	return NewStudentRepository(gdb, retrier), NewSubjectRepository(gdb, retrier)
}

func newStudent(id, code, email string) *models.Student {
	return &models.Student{
		ID:        id,
		Code:      code,
		Names:     "Juan",
		Lastnames: "Pérez",
		BirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Age:       23,
		Email:     email,
	}
}

func TestStudentRepository(t *testing.T) {
	ctx := context.Background()
	students, _ := setupRepos(t)

	_, found, err := students.FindByID(ctx, "123456789")
	require.NoError(t, err)
	assert.False(t, found)

	stored, err := students.Insert(ctx, newStudent("123456789", "STU001", "juan@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "123456789", stored.ID)

	got, found, err := students.FindByCode(ctx, "STU001")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "juan@example.com", got.Email)
	assert.True(t, got.BirthDate.Equal(stored.BirthDate))

	changed := newStudent("123456789", "STU010", "juan.p@example.com")
	changed.Age = 0
	changed.LogDetails = "note"
	updated, found, err := students.Update(ctx, changed)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "STU010", updated.Code)

	reloaded, _, err := students.FindByID(ctx, "123456789")
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Age)
	assert.Equal(t, "note", reloaded.LogDetails)

	_, found, err = students.Update(ctx, newStudent("000000000", "STU999", "x@example.com"))
	require.NoError(t, err)
	assert.False(t, found)

	all, err := students.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	count, err := students.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestStudentRepository_UniqueViolationsNameTheColumn(t *testing.T) {
	ctx := context.Background()
	students, _ := setupRepos(t)

	_, err := students.Insert(ctx, newStudent("1", "STU001", "same@example.com"))
	require.NoError(t, err)

	_, err = students.Insert(ctx, newStudent("2", "STU002", "same@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.ErrorIs(t, err, apperrors.ErrStudentEmailConflict)

	_, err = students.Insert(ctx, newStudent("3", "STU001", "other@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrStudentCodeConflict)

	_, err = students.Insert(ctx, newStudent("1", "STU003", "third@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrStudentIDConflict)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError("op", nil))
	assert.ErrorIs(t, translateError("insert student", errors.New("UNIQUE constraint failed: students.code")), apperrors.ErrStudentCodeConflict)
	assert.ErrorIs(t, translateError("insert student", errors.New("UNIQUE constraint failed: students.other")), apperrors.ErrStudentConflict)
	assert.ErrorIs(t, translateError("insert student", gorm.ErrDuplicatedKey), apperrors.ErrStudentConflict)
	assert.ErrorIs(t, translateError("insert subject", errors.New("FOREIGN KEY constraint failed")), apperrors.ErrStudentNotFound)

	storage := translateError("list students", errors.New("disk I/O error"))
	assert.ErrorIs(t, storage, apperrors.ErrStorage)
	assert.Contains(t, storage.Error(), "list students")
}

func TestSubjectRepository(t *testing.T) {
	ctx := context.Background()
	students, subjects := setupRepos(t)

	_, err := students.Insert(ctx, newStudent("123456789", "STU001", "juan@example.com"))
	require.NoError(t, err)

	first, err := subjects.Insert(ctx, &models.Subject{Code: "MAT001", Name: "Mathematics", StudentID: "123456789"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := subjects.Insert(ctx, &models.Subject{Code: "PHY001", Name: "Physics", StudentID: "123456789"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	owned, err := subjects.FindByStudentID(ctx, "123456789")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "MAT001", owned[0].Code)

	empty, err := subjects.FindByStudentID(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	second.Location = "Room 202"
	updated, found, err := subjects.Update(ctx, second)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Room 202", updated.Location)

	got, found, err := subjects.FindByID(ctx, second.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Room 202", got.Location)

	_, found, err = subjects.FindByID(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, found)

	all, err := subjects.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSubjectRepository_UnknownStudentIsRejected(t *testing.T) {
	_, subjects := setupRepos(t)

	_, err := subjects.Insert(context.Background(), &models.Subject{Code: "MAT001", StudentID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
