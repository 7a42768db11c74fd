package Store

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"DentalClinic/Models"

	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

// Store is the record store adapter. Every mutating operation runs in
// a single transaction; on error nothing is left partially applied.
type Store struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewStore(db *gorm.DB, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{DB: db, Logger: logger}
}

// Visit is the combined "add patient & appointment" form submission.
// The patient is upserted by phone, the appointment always created.
type Visit struct {
	Name          string
	Phone         string
	TreatmentType string
	TeethLocation string

	Date                 string
	AppointmentTreatment string
	Dentist              string
	Fee                  *float64
	Notes                string
}

// DayAppointment is one row of the daily reminders view, an
// appointment joined with its owning patient.
type DayAppointment struct {
	PatientName   string   `json:"patient_name"`
	Phone         string   `json:"phone"`
	Date          string   `json:"date"`
	TreatmentType string   `json:"treatment_type"`
	Dentist       string   `json:"dentist"`
	Fee           *float64 `json:"fee"`
	Notes         string   `json:"notes"`
}

func (s *Store) FindPatientByPhone(phone string) (*Models.Patient, error) {
	var patient Models.Patient
	err := s.DB.Where("phone = ?", phone).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up patient by phone: %w", err)
	}
	return &patient, nil
}

// upsertPatient runs inside an already-open transaction. Phone is the
// natural key: an existing patient gets its mutable fields overwritten,
// a missing one is created.
func upsertPatient(tx *gorm.DB, name, phone, treatmentType, teethLocation string) (*Models.Patient, error) {
	var patient Models.Patient
	err := tx.Where("phone = ?", phone).First(&patient).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		patient = Models.Patient{
			Name:          name,
			Phone:         phone,
			TreatmentType: treatmentType,
			TeethLocation: teethLocation,
		}
		if err := tx.Create(&patient).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		patient.Name = name
		patient.TreatmentType = treatmentType
		patient.TeethLocation = teethLocation
		if err := tx.Save(&patient).Error; err != nil {
			return nil, err
		}
	}
	return &patient, nil
}

func (s *Store) UpsertPatient(name, phone, treatmentType, teethLocation string) (*Models.Patient, error) {
	var patient *Models.Patient
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		patient, err = upsertPatient(tx, name, phone, treatmentType, teethLocation)
		return err
	})
	if err != nil {
		s.Logger.Printf("Upsert of patient %s rolled back: %v", phone, err)
		return nil, err
	}
	return patient, nil
}

func (s *Store) AddAppointment(patient *Models.Patient, date, treatmentType, dentist string, fee *float64, notes string) (*Models.Appointment, error) {
	appointment := Models.Appointment{
		Date:          date,
		TreatmentType: treatmentType,
		Dentist:       dentist,
		Fee:           fee,
		Notes:         notes,
		PatientID:     patient.ID,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&appointment).Error
	})
	if err != nil {
		s.Logger.Printf("Appointment for patient %s rolled back: %v", patient.Phone, err)
		return nil, err
	}
	return &appointment, nil
}

// RegisterVisit upserts the patient and attaches the new appointment
// in one transaction, matching the combined add form.
func (s *Store) RegisterVisit(visit Visit) (*Models.Patient, *Models.Appointment, error) {
	var patient *Models.Patient
	var appointment Models.Appointment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		patient, err = upsertPatient(tx, visit.Name, visit.Phone, visit.TreatmentType, visit.TeethLocation)
		if err != nil {
			return err
		}
		appointment = Models.Appointment{
			Date:          visit.Date,
			TreatmentType: visit.AppointmentTreatment,
			Dentist:       visit.Dentist,
			Fee:           visit.Fee,
			Notes:         visit.Notes,
			PatientID:     patient.ID,
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		s.Logger.Printf("Visit registration for %s rolled back: %v", visit.Phone, err)
		return nil, nil, err
	}
	return patient, &appointment, nil
}

// DeletePatientByPhone removes the patient and every appointment that
// references it. Child rows go first so the whole cascade is one
// transaction.
func (s *Store) DeletePatientByPhone(phone string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var patient Models.Patient
		if err := tx.Where("phone = ?", phone).First(&patient).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPatientNotFound
			}
			return err
		}
		if err := tx.Where("patient_id = ?", patient.ID).Delete(&Models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&patient).Error
	})
	if err != nil && !errors.Is(err, ErrPatientNotFound) {
		s.Logger.Printf("Deletion of patient %s rolled back: %v", phone, err)
	}
	return err
}

func (s *Store) UpdatePatientFields(phone, name, treatmentType, teethLocation string) (*Models.Patient, error) {
	var patient Models.Patient
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("phone = ?", phone).First(&patient).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPatientNotFound
			}
			return err
		}
		patient.Name = name
		patient.TreatmentType = treatmentType
		patient.TeethLocation = teethLocation
		return tx.Save(&patient).Error
	})
	if err != nil {
		if !errors.Is(err, ErrPatientNotFound) {
			s.Logger.Printf("Update of patient %s rolled back: %v", phone, err)
		}
		return nil, err
	}
	return &patient, nil
}

// SearchPatients returns all patients when term is empty, otherwise
// patients whose name, phone, treatment type, teeth location, or any
// owned appointment's treatment type contains term, case-insensitively.
// Appointments are preloaded ordered by date ascending.
func (s *Store) SearchPatients(term string) ([]Models.Patient, error) {
	var patients []Models.Patient
	query := s.DB.Model(&Models.Patient{}).Preload("Appointments", func(db *gorm.DB) *gorm.DB {
		return db.Order("date ASC")
	})
	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(treatment_type) LIKE ? OR LOWER(teeth_location) LIKE ? OR id IN (?)",
			pattern, pattern, pattern, pattern,
			s.DB.Model(&Models.Appointment{}).Select("patient_id").Where("LOWER(treatment_type) LIKE ?", pattern),
		)
	}
	if err := query.Order("id ASC").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	return patients, nil
}

// AppointmentsOnDate lists every appointment on the given calendar
// date (YYYY-MM-DD) with the owning patient's name for display.
func (s *Store) AppointmentsOnDate(date string) ([]DayAppointment, error) {
	var due []DayAppointment
	err := s.DB.Model(&Models.Appointment{}).
		Select("patients.name AS patient_name, patients.phone AS phone, appointments.date, appointments.treatment_type, appointments.dentist, appointments.fee, appointments.notes").
		Joins("JOIN patients ON appointments.patient_id = patients.id").
		Where("appointments.date = ?", date).
		Order("appointments.id ASC").
		Scan(&due).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments on %s: %w", date, err)
	}
	return due, nil
}
