package Controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"DentalClinic/Store"
	"DentalClinic/Teeth"
	"DentalClinic/Validation"

	"github.com/gin-gonic/gin"
)

// Records is the store adapter the handlers run against, set once at
// startup via UseStore.
var Records *Store.Store

func UseStore(records *Store.Store) {
	Records = records
}

func AddPatientAndAppointment(c *gin.Context) {
	var input struct {
		Name                 string `json:"name"`
		Phone                string `json:"phone"`
		TreatmentType        string `json:"treatment_type"`
		TeethLocation        string `json:"teeth_location"`
		Date                 string `json:"date"`
		AppointmentTreatment string `json:"appointment_treatment"`
		Dentist              string `json:"dentist"`
		Fee                  string `json:"fee"`
		Notes                string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient name cannot be empty"})
		return
	}
	phone := strings.TrimSpace(input.Phone)
	if !Validation.ValidatePhone(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment date, expected YYYY-MM-DD"})
		return
	}
	appointmentTreatment := strings.TrimSpace(input.AppointmentTreatment)
	if appointmentTreatment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment treatment type is required"})
		return
	}
	dentist := strings.TrimSpace(input.Dentist)
	if dentist == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dentist name is required"})
		return
	}
	fee, err := Validation.ValidateFee(strings.TrimSpace(input.Fee))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, appointment, err := Records.RegisterVisit(Store.Visit{
		Name:                 name,
		Phone:                phone,
		TreatmentType:        strings.TrimSpace(input.TreatmentType),
		TeethLocation:        Teeth.Parse(input.TeethLocation).Serialize(),
		Date:                 input.Date,
		AppointmentTreatment: appointmentTreatment,
		Dentist:              dentist,
		Fee:                  fee,
		Notes:                strings.TrimSpace(input.Notes),
	})
	if err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save patient and appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Patient and appointment added successfully",
		"patient_id":     patient.ID,
		"appointment_id": appointment.ID,
	})
}

func DeletePatient(c *gin.Context) {
	var input struct {
		Phone string `json:"phone"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phone := strings.TrimSpace(input.Phone)
	if !Validation.ValidatePhone(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		return
	}

	if err := Records.DeletePatientByPhone(phone); err != nil {
		if errors.Is(err, Store.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		log.Println(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete patient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient Deleted Successfully"})
}

func ModifyPatient(c *gin.Context) {
	var input struct {
		Phone         string `json:"phone"`
		Name          string `json:"name"`
		TreatmentType string `json:"treatment_type"`
		TeethLocation string `json:"teeth_location"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phone := strings.TrimSpace(input.Phone)
	if !Validation.ValidatePhone(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		return
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient name cannot be empty"})
		return
	}

	patient, err := Records.UpdatePatientFields(
		phone,
		name,
		strings.TrimSpace(input.TreatmentType),
		Teeth.Parse(input.TeethLocation).Serialize(),
	)
	if err != nil {
		if errors.Is(err, Store.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		log.Println(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update patient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Patient details updated",
		"patient": patient,
	})
}

func SearchPatients(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))

	patients, err := Records.SearchPatients(term)
	if err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search patients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// AppointmentReminders lists the appointments on a calendar date,
// defaulting to today.
func AppointmentReminders(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	due, err := Records.AppointmentsOnDate(date)
	if err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date,
		"count":        len(due),
		"appointments": due,
	})
}

// TeethLayout serves the quadrant grid the teeth selector dialog is
// built from.
func TeethLayout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quadrants": Teeth.Layout()})
}
