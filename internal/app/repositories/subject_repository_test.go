package repositories

import (
	"context"
	"errors"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentmanagement/internal/app/models"
	"github.com/yigit/studentmanagement/internal/pkg/apperrors"
)

const subjectSelect = "SELECT id, code, name, instructor, schedule, location, log_details, student_id FROM subjects"

// sentStatementError is a network failure raised after the statement reached the server
type sentStatementError struct{ err error }

func (e *sentStatementError) Error() string     { return "write failed: " + e.err.Error() }
func (e *sentStatementError) Unwrap() error     { return e.err }
func (e *sentStatementError) SafeToRetry() bool { return false }

func newTestSubjectRepository(q *fakeQuerier) *PgSubjectRepository {
	return NewPgSubjectRepository(q, NewStorageRetrier(3, time.Millisecond, time.Millisecond))
}

func testSubject(id int64, code string) *models.Subject {
	return &models.Subject{
		ID:         id,
		Code:       code,
		Name:       "Mathematics",
		Instructor: "Dr. Smith",
		Schedule:   "Mon 08:00",
		Location:   "Room 101",
		LogDetails: "note",
		StudentID:  "123456789",
	}
}

func subjectRow(s *models.Subject) []any {
	return []any{s.ID, s.Code, s.Name, s.Instructor, s.Schedule, s.Location, s.LogDetails, s.StudentID}
}

func TestPgSubjectRepository_FindByStudentID(t *testing.T) {
	q := &fakeQuerier{rows: [][]any{subjectRow(testSubject(1, "MAT001")), subjectRow(testSubject(2, "PHY001"))}}
	repo := newTestSubjectRepository(q)

	subjects, err := repo.FindByStudentID(context.Background(), "123456789")
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "MAT001", subjects[0].Code)
	assert.Equal(t, "PHY001", subjects[1].Code)

	assert.Equal(t, subjectSelect+" WHERE student_id = $1 ORDER BY id ASC", q.lastQuery().sql)
	assert.Equal(t, []any{"123456789"}, q.lastQuery().args)
}

func TestPgSubjectRepository_FindByStudentIDEmpty(t *testing.T) {
	repo := newTestSubjectRepository(&fakeQuerier{})

	subjects, err := repo.FindByStudentID(context.Background(), "123456789")
	require.NoError(t, err)
	assert.NotNil(t, subjects)
	assert.Empty(t, subjects)
}

func TestPgSubjectRepository_FindByID(t *testing.T) {
	q := &fakeQuerier{}
	repo := newTestSubjectRepository(q)

	got, found, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
	assert.Equal(t, subjectSelect+" WHERE id = $1 LIMIT 1", q.lastQuery().sql)
	assert.Equal(t, []any{int64(42)}, q.lastQuery().args)

	q.rows = [][]any{subjectRow(testSubject(42, "MAT001"))}
	got, found, err = repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, testSubject(42, "MAT001"), got)
}

func TestPgSubjectRepository_Insert(t *testing.T) {
	q := &fakeQuerier{rows: [][]any{subjectRow(testSubject(7, "MAT001"))}}
	repo := newTestSubjectRepository(q)

	in := testSubject(0, "MAT001")
	stored, err := repo.Insert(context.Background(), in)
	require.NoError(t, err)
	assert.EqualValues(t, 7, stored.ID)

	require.Len(t, q.queries, 1)
	assert.Equal(t, "INSERT INTO subjects (code,name,instructor,schedule,location,log_details,student_id) "+
		"VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, code, name, instructor, schedule, location, log_details, student_id",
		q.lastQuery().sql)
	assert.Equal(t, []any{"MAT001", "Mathematics", "Dr. Smith", "Mon 08:00", "Room 101", "note", "123456789"}, q.lastQuery().args)
}

func TestPgSubjectRepository_InsertForUnknownStudent(t *testing.T) {
	q := &fakeQuerier{errs: []error{&pgconn.PgError{Code: "23503", ConstraintName: "subjects_student_id_fkey"}}}
	repo := newTestSubjectRepository(q)

	_, err := repo.Insert(context.Background(), testSubject(0, "MAT001"))
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Len(t, q.queries, 1)
}

func TestPgSubjectRepository_InsertNotRetriedOnceSent(t *testing.T) {
	sent := &sentStatementError{err: &net.OpError{Op: "read", Net: "tcp", Err: syscall.ECONNRESET}}
	q := &fakeQuerier{errs: []error{sent}, rows: [][]any{subjectRow(testSubject(7, "MAT001"))}}
	repo := newTestSubjectRepository(q)

	_, err := repo.Insert(context.Background(), testSubject(0, "MAT001"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.True(t, errors.Is(err, syscall.ECONNRESET))
	assert.Len(t, q.queries, 1)
}

func TestPgSubjectRepository_Update(t *testing.T) {
	q := &fakeQuerier{}
	repo := newTestSubjectRepository(q)

	updated, found, err := repo.Update(context.Background(), testSubject(9, "MAT002"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, updated)

	assert.Equal(t, "UPDATE subjects SET code = $1, instructor = $2, location = $3, log_details = $4, name = $5, "+
		"schedule = $6, student_id = $7 WHERE id = $8 RETURNING id, code, name, instructor, schedule, location, log_details, student_id",
		q.lastQuery().sql)
	assert.Equal(t, []any{"MAT002", "Dr. Smith", "Room 101", "note", "Mathematics", "Mon 08:00", "123456789", int64(9)}, q.lastQuery().args)

	q.rows = [][]any{subjectRow(testSubject(9, "MAT002"))}
	updated, found, err = repo.Update(context.Background(), testSubject(9, "MAT002"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "MAT002", updated.Code)
}

func TestPgSubjectRepository_ListAll(t *testing.T) {
	q := &fakeQuerier{rows: [][]any{subjectRow(testSubject(1, "MAT001"))}}
	repo := newTestSubjectRepository(q)

	subjects, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, subjects, 1)
	assert.Equal(t, subjectSelect, q.lastQuery().sql)
}
