package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

// ExportRecords writes the flattened patients/appointments table to an
// .xlsx file, one row per appointment, patients without appointments
// getting a single row with blank appointment columns. An optional
// date range limits which appointments are included.
func ExportRecords(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patients, err := Records.SearchPatients("")
	if err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load records"})
		return
	}

	headers := map[string]string{
		"A1": "Patient",
		"B1": "Phone",
		"C1": "Patient Treatment",
		"D1": "Teeth Location",
		"E1": "Appointment Date",
		"F1": "Treatment",
		"G1": "Dentist",
		"H1": "Fee",
		"I1": "Notes",
	}
	file := excelize.NewFile()
	sheet := "Records"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for cell, header := range headers {
		file.SetCellValue(sheet, cell, header)
	}

	// Dates are YYYY-MM-DD, so string comparison orders them. A bound
	// left empty is open-ended.
	inRange := func(date string) bool {
		if input.DateFrom != "" && date < input.DateFrom {
			return false
		}
		if input.DateTo != "" && date > input.DateTo {
			return false
		}
		return true
	}
	rangeGiven := input.DateFrom != "" || input.DateTo != ""

	row := 2
	for _, patient := range patients {
		wrote := false
		for _, appointment := range patient.Appointments {
			if !inRange(appointment.Date) {
				continue
			}
			file.SetCellValue(sheet, fmt.Sprintf("A%v", row), patient.Name)
			file.SetCellValue(sheet, fmt.Sprintf("B%v", row), patient.Phone)
			file.SetCellValue(sheet, fmt.Sprintf("C%v", row), patient.TreatmentType)
			file.SetCellValue(sheet, fmt.Sprintf("D%v", row), patient.TeethLocation)
			file.SetCellValue(sheet, fmt.Sprintf("E%v", row), appointment.Date)
			file.SetCellValue(sheet, fmt.Sprintf("F%v", row), appointment.TreatmentType)
			file.SetCellValue(sheet, fmt.Sprintf("G%v", row), appointment.Dentist)
			if appointment.Fee != nil {
				file.SetCellValue(sheet, fmt.Sprintf("H%v", row), *appointment.Fee)
			}
			file.SetCellValue(sheet, fmt.Sprintf("I%v", row), appointment.Notes)
			row++
			wrote = true
		}
		if !wrote && !rangeGiven {
			file.SetCellValue(sheet, fmt.Sprintf("A%v", row), patient.Name)
			file.SetCellValue(sheet, fmt.Sprintf("B%v", row), patient.Phone)
			file.SetCellValue(sheet, fmt.Sprintf("C%v", row), patient.TreatmentType)
			file.SetCellValue(sheet, fmt.Sprintf("D%v", row), patient.TeethLocation)
			row++
		}
	}

	filename := "./Records.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write export file"})
		return
	}
	c.File(filename)
}
