package dto

// CreateSubjectRequest carries the fields of a subject to add under a student
type CreateSubjectRequest struct {
	Code       string `json:"code" example:"MAT001"`
	Name       string `json:"name" binding:"max=100" example:"Mathematics"`
	Instructor string `json:"instructor" binding:"max=100" example:"Prof. López"`
	Schedule   string `json:"schedule" binding:"max=100" example:"Monday 10:00"`
	Location   string `json:"location" binding:"max=100" example:"Room 101"`
	LogDetails string `json:"logDetails" example:"Added by registrar"`
}

// SubjectResponse is the external view of a subject
type SubjectResponse struct {
	ID         int64  `json:"id" example:"1"`
	Code       string `json:"code" example:"MAT001"`
	Name       string `json:"name" example:"Mathematics"`
	Instructor string `json:"instructor" example:"Prof. López"`
	Schedule   string `json:"schedule" example:"Monday 10:00"`
	Location   string `json:"location" example:"Room 101"`
	LogDetails string `json:"logDetails" example:"Created on 1/2/2024 3:04:05 PM - Added by registrar"`
	StudentID  string `json:"studentId" example:"123456789"`
}
