package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/studentmanagement/internal/app/models"
	appRepos "github.com/yigit/studentmanagement/internal/app/repositories"
	"github.com/yigit/studentmanagement/internal/pkg/auditlog"
)

// ownerID is the student owning every sample subject
const ownerID = "123456789"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func defaultStudents() []*appModels.Student {
	return []*appModels.Student{
		{ID: ownerID, Code: "STU001", Names: "Juan", Lastnames: "Pérez", BirthDate: date(2000, time.January, 1), Age: 23, Email: "juan.perez@example.com"},
		{ID: "987654321", Code: "STU002", Names: "María", Lastnames: "Gómez", BirthDate: date(2001, time.May, 15), Age: 22, Email: "maria.gomez@example.com"},
		{ID: "456789123", Code: "STU003", Names: "Pedro", Lastnames: "López", BirthDate: date(1999, time.August, 20), Age: 24, Email: "pedro.lopez@example.com"},
		{ID: "789123456", Code: "STU004", Names: "Ana", Lastnames: "Rodríguez", BirthDate: date(2002, time.March, 10), Age: 21, Email: "ana.rodriguez@example.com"},
		{ID: "321654987", Code: "STU005", Names: "Carlos", Lastnames: "Sánchez", BirthDate: date(2000, time.December, 5), Age: 23, Email: "carlos.sanchez@example.com"},
	}
}

func defaultSubjects() []*appModels.Subject {
	return []*appModels.Subject{
		{Code: "MAT001", Name: "Mathematics", Instructor: "Prof. López", Schedule: "Monday 10:00", Location: "Room 101"},
		{Code: "PHY001", Name: "Physics", Instructor: "Prof. Gómez", Schedule: "Tuesday 14:00", Location: "Room 102"},
		{Code: "CHE001", Name: "Chemistry", Instructor: "Prof. Pérez", Schedule: "Wednesday 9:00", Location: "Room 103"},
		{Code: "BIO001", Name: "Biology", Instructor: "Prof. Rodríguez", Schedule: "Thursday 16:00", Location: "Room 104"},
		{Code: "INF001", Name: "Computer Science", Instructor: "Prof. Sánchez", Schedule: "Friday 11:00", Location: "Room 105"},
	}
}

// CreateDefaultData inserts the sample students and subjects when no student exists yet.
// Individual insert failures are collected so one bad row does not hide the others.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, now time.Time, lgr zerolog.Logger) error {
	count, err := repos.StudentRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting students: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("students", count).Msg("Students already present, skipping default data")
		return nil
	}

	lgr.Info().Msg("Creating default data (Students/Subjects)...")
	note := auditlog.Seeded(now)
	var finalErr error

	ownerCreated := false
	for _, student := range defaultStudents() {
		student.LogDetails = note
		if _, err := repos.StudentRepository.Insert(ctx, student); err != nil {
			lgr.Error().Err(err).Str("studentId", student.ID).Msg("Error creating default student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if student.ID == ownerID {
			ownerCreated = true
		}
	}

	if !ownerCreated {
		return finalErr
	}

	for _, subject := range defaultSubjects() {
		subject.StudentID = ownerID
		subject.LogDetails = note
		if _, err := repos.SubjectRepository.Insert(ctx, subject); err != nil {
			lgr.Error().Err(err).Str("code", subject.Code).Msg("Error creating default subject")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data created.")
	}
	return finalErr
}
