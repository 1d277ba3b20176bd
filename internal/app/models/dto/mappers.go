package dto

import "github.com/yigit/studentmanagement/internal/app/models"

// NewStudent builds a student record from a request, keyed by id
func NewStudent(id string, req *CreateStudentRequest) *models.Student {
	student := &models.Student{ID: id}
	ApplyStudentRequest(student, req)
	return student
}

// ApplyStudentRequest overwrites every mutable field of student from req.
// The audit note is left to the caller.
func ApplyStudentRequest(student *models.Student, req *CreateStudentRequest) {
	student.Code = req.Code
	student.Names = req.Names
	student.Lastnames = req.Lastnames
	student.BirthDate = req.BirthDate.Time
	student.Age = req.Age
	student.Email = req.Email
}

// FromStudent converts a student record to its view
func FromStudent(student *models.Student) StudentResponse {
	if student == nil {
		return StudentResponse{}
	}
	return StudentResponse{
		ID:         student.ID,
		Code:       student.Code,
		Names:      student.Names,
		Lastnames:  student.Lastnames,
		BirthDate:  student.BirthDate,
		Age:        student.Age,
		Email:      student.Email,
		LogDetails: student.LogDetails,
	}
}

// FromStudents converts student records to views; never returns nil
func FromStudents(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, FromStudent(s))
	}
	return out
}

// NewSubject builds a subject record owned by studentID from a request
func NewSubject(studentID string, req *CreateSubjectRequest) *models.Subject {
	return &models.Subject{
		Code:       req.Code,
		Name:       req.Name,
		Instructor: req.Instructor,
		Schedule:   req.Schedule,
		Location:   req.Location,
		StudentID:  studentID,
	}
}

// FromSubject converts a subject record to its view
func FromSubject(subject *models.Subject) SubjectResponse {
	if subject == nil {
		return SubjectResponse{}
	}
	return SubjectResponse{
		ID:         subject.ID,
		Code:       subject.Code,
		Name:       subject.Name,
		Instructor: subject.Instructor,
		Schedule:   subject.Schedule,
		Location:   subject.Location,
		LogDetails: subject.LogDetails,
		StudentID:  subject.StudentID,
	}
}

// FromSubjects converts subject records to views; never returns nil
func FromSubjects(subjects []*models.Subject) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, FromSubject(s))
	}
	return out
}
