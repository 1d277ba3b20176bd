package models

import "time"

// Student defines the student record stored in the 'students' table
type Student struct {
	ID         string    `json:"id" db:"id" gorm:"primaryKey;size:10"`               // Externally supplied identifier (national ID)
	Code       string    `json:"code" db:"code" gorm:"size:20;not null;uniqueIndex"` // Unique business code
	Names      string    `json:"names" db:"names" gorm:"size:100;not null"`
	Lastnames  string    `json:"lastnames" db:"lastnames" gorm:"size:100;not null"`
	BirthDate  time.Time `json:"birthDate" db:"birth_date" gorm:"not null"`
	Age        int       `json:"age" db:"age" gorm:"not null"`
	Email      string    `json:"email" db:"email" gorm:"size:100;not null;uniqueIndex"`
	LogDetails string    `json:"logDetails" db:"log_details" gorm:"size:500"` // Audit note
}

// TableName pins the gorm table name to the one used by the SQL schema
func (Student) TableName() string {
	return "students"
}
