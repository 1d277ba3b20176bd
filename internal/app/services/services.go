// Package services holds the business logic behind the HTTP controllers.
//
// Services defined in this package:
//   - StudentService: registers or updates students keyed by their external identifier
//   - SubjectService: lists subjects by student code and adds subjects to a student
package services

import (
	"time"

	"github.com/yigit/studentmanagement/internal/app/repositories"
	"github.com/yigit/studentmanagement/internal/pkg/auditlog"
)

// Services groups the business-logic components
type Services struct {
	StudentService StudentService
	SubjectService SubjectService
}

// NewServices builds every service over the given gateways. A nil clock means time.Now.
func NewServices(repos *repositories.Repositories, clock auditlog.Clock) *Services {
	if clock == nil {
		clock = time.Now
	}
	return &Services{
		StudentService: NewStudentService(repos.StudentRepository, clock),
		SubjectService: NewSubjectService(repos.SubjectRepository, repos.StudentRepository, clock),
	}
}
