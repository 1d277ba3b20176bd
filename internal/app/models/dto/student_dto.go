package dto

import "time"

// CreateStudentRequest carries the fields used to register or update a student
type CreateStudentRequest struct {
	Code       string `json:"code" example:"STU001"`
	Names      string `json:"names" binding:"max=100" example:"Juan"`
	Lastnames  string `json:"lastnames" binding:"max=100" example:"Pérez"`
	BirthDate  Date   `json:"birthDate" swaggertype:"string" example:"2000-01-01"`
	Age        int    `json:"age" binding:"min=0" example:"23"`
	Email      string `json:"email" binding:"omitempty,email,max=100" example:"juan.perez@example.com"`
	LogDetails string `json:"logDetails" example:"Enrollment form"`
}

// StudentResponse is the external view of a student
type StudentResponse struct {
	ID         string    `json:"id" example:"123456789"`
	Code       string    `json:"code" example:"STU001"`
	Names      string    `json:"names" example:"Juan"`
	Lastnames  string    `json:"lastnames" example:"Pérez"`
	BirthDate  time.Time `json:"birthDate" example:"2000-01-01T00:00:00Z"`
	Age        int       `json:"age" example:"23"`
	Email      string    `json:"email" example:"juan.perez@example.com"`
	LogDetails string    `json:"logDetails" example:"Created on 1/2/2024 3:04:05 PM - Enrollment form"`
}
