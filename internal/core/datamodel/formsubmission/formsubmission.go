package formsubmission

import "time"

type FormSubmission struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Email       string    `gorm:"column:email;not null"`
	Phone       string    `gorm:"column:phone;not null"`
	Whatsapp    *string   `gorm:"column:whatsapp"`
	FormType    string    `gorm:"column:form_type;not null"`
	SubmittedAt time.Time `gorm:"column:submitted_at;default:now()"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
}
