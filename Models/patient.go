package Models

import "time"

type Patient struct {
	ID            uint          `json:"id" gorm:"primarykey"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Name          string        `json:"name" gorm:"not null"`
	Phone         string        `json:"phone" gorm:"uniqueIndex:idx_patients_phone;not null"`
	TreatmentType string        `json:"treatment_type"`
	TeethLocation string        `json:"teeth_location"`
	Appointments  []Appointment `json:"appointments" gorm:"constraint:OnDelete:CASCADE"`
}
