// Package memory provides in-process implementations of the persistence gateway.
// They mirror the relational constraints (unique student code and email, subject
// ownership) and are used by tests and local runs without a database.
package memory

import (
	"context"
	"sync"

	"github.com/yigit/studentmanagement/internal/app/models"
	"github.com/yigit/studentmanagement/internal/pkg/apperrors"
)

// Store holds both record kinds so subject ownership can be checked.
type Store struct {
	mu            sync.RWMutex
	students      map[string]*models.Student
	studentOrder  []string
	subjects      map[int64]*models.Subject
	subjectOrder  []int64
	nextSubjectID int64
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		students:      make(map[string]*models.Student),
		subjects:      make(map[int64]*models.Subject),
		nextSubjectID: 1,
	}
}

// Students returns the student gateway backed by the store
func (s *Store) Students() *StudentRepository {
	return &StudentRepository{store: s}
}

// Subjects returns the subject gateway backed by the store
func (s *Store) Subjects() *SubjectRepository {
	return &SubjectRepository{store: s}
}

// conflictLocked returns the conflict raised when another student already uses
// the candidate's code or email, nil otherwise
func (s *Store) conflictLocked(candidate *models.Student) error {
	for id, existing := range s.students {
		if id == candidate.ID {
			continue
		}
		if existing.Code == candidate.Code {
			return apperrors.ErrStudentCodeConflict
		}
		if existing.Email == candidate.Email {
			return apperrors.ErrStudentEmailConflict
		}
	}
	return nil
}

func copyStudent(in *models.Student) *models.Student {
	out := *in
	return &out
}

func copySubject(in *models.Subject) *models.Subject {
	out := *in
	out.Student = nil
	return &out
}

// StudentRepository is the in-memory student gateway
type StudentRepository struct {
	store *Store
}

// FindByID retrieves a student by identifier
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.students[id]
	if !ok {
		return nil, false, nil
	}
	return copyStudent(s), true, nil
}

// FindByCode retrieves a student by business code
func (r *StudentRepository) FindByCode(ctx context.Context, code string) (*models.Student, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, id := range r.store.studentOrder {
		if s := r.store.students[id]; s.Code == code {
			return copyStudent(s), true, nil
		}
	}
	return nil, false, nil
}

// Insert stores a new student
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.students[student.ID]; exists {
		return nil, apperrors.ErrStudentIDConflict
	}
	if err := r.store.conflictLocked(student); err != nil {
		return nil, err
	}

	r.store.students[student.ID] = copyStudent(student)
	r.store.studentOrder = append(r.store.studentOrder, student.ID)
	return copyStudent(student), nil
}

// Update overwrites the mutable fields of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (*models.Student, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.students[student.ID]; !exists {
		return nil, false, nil
	}
	if err := r.store.conflictLocked(student); err != nil {
		return nil, false, err
	}

	r.store.students[student.ID] = copyStudent(student)
	return copyStudent(student), true, nil
}

// ListAll retrieves every student in insertion order
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*models.Student, 0, len(r.store.studentOrder))
	for _, id := range r.store.studentOrder {
		out = append(out, copyStudent(r.store.students[id]))
	}
	return out, nil
}

// Count returns the number of stored students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.students)), nil
}

// SubjectRepository is the in-memory subject gateway
type SubjectRepository struct {
	store *Store
}

// FindByID retrieves a subject by identifier
func (r *SubjectRepository) FindByID(ctx context.Context, id int64) (*models.Subject, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.subjects[id]
	if !ok {
		return nil, false, nil
	}
	return copySubject(s), true, nil
}

// FindByStudentID retrieves every subject owned by a student
func (r *SubjectRepository) FindByStudentID(ctx context.Context, studentID string) ([]*models.Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*models.Subject{}
	for _, id := range r.store.subjectOrder {
		if s := r.store.subjects[id]; s.StudentID == studentID {
			out = append(out, copySubject(s))
		}
	}
	return out, nil
}

// Insert stores a new subject and assigns its sequential identifier
func (r *SubjectRepository) Insert(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.students[subject.StudentID]; !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	stored := copySubject(subject)
	stored.ID = r.store.nextSubjectID
	r.store.nextSubjectID++
	r.store.subjects[stored.ID] = stored
	r.store.subjectOrder = append(r.store.subjectOrder, stored.ID)
	return copySubject(stored), nil
}

// Update overwrites the mutable fields of an existing subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) (*models.Subject, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.subjects[subject.ID]; !ok {
		return nil, false, nil
	}
	if _, ok := r.store.students[subject.StudentID]; !ok {
		return nil, false, apperrors.ErrStudentNotFound
	}

	r.store.subjects[subject.ID] = copySubject(subject)
	return copySubject(subject), true, nil
}

// ListAll retrieves every subject in insertion order
func (r *SubjectRepository) ListAll(ctx context.Context) ([]*models.Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*models.Subject, 0, len(r.store.subjectOrder))
	for _, id := range r.store.subjectOrder {
		out = append(out, copySubject(r.store.subjects[id]))
	}
	return out, nil
}
