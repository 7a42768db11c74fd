package Models

import "time"

type Appointment struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Date          string    `json:"date" gorm:"not null"` // YYYY-MM-DD
	TreatmentType string    `json:"treatment_type" gorm:"not null"`
	Dentist       string    `json:"dentist" gorm:"not null"`
	Fee           *float64  `json:"fee" gorm:"default:null"`
	Notes         string    `json:"notes"`
	PatientID     uint      `json:"patient_id"`
}
