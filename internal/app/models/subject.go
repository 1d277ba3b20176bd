package models

// Subject defines a subject owned by exactly one student ('subjects' table)
type Subject struct {
	ID         int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Code       string `json:"code" db:"code" gorm:"size:20;not null"`
	Name       string `json:"name" db:"name" gorm:"size:100;not null"`
	Instructor string `json:"instructor" db:"instructor" gorm:"size:100;not null"`
	Schedule   string `json:"schedule" db:"schedule" gorm:"size:100;not null"`
	Location   string `json:"location" db:"location" gorm:"size:100;not null"`
	LogDetails string `json:"logDetails" db:"log_details" gorm:"size:500"`
	StudentID  string `json:"studentId" db:"student_id" gorm:"size:10;not null;index"`

	Student *Student `json:"-" gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName pins the gorm table name to the one used by the SQL schema
func (Subject) TableName() string {
	return "subjects"
}
