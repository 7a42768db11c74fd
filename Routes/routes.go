package Routes

import (
	"DentalClinic/Controllers"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	api := router.Group("/api")
	{
		api.GET("/SearchPatients", Controllers.SearchPatients)
		api.GET("/AppointmentReminders", Controllers.AppointmentReminders)
		api.GET("/TeethLayout", Controllers.TeethLayout)
		api.POST("/AddPatientAndAppointment", Controllers.AddPatientAndAppointment)
		api.POST("/ModifyPatient", Controllers.ModifyPatient)
		api.POST("/DeletePatient", Controllers.DeletePatient)
		api.POST("/ExportRecords", Controllers.ExportRecords)
	}
}
