package handlers

import (
	doctorRepo "medisched/database/repository/doctor"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups everything route registration needs.
type HandlerBundle struct {
	// Repositories needed by middleware.
	DoctorRepo doctorRepo.DoctorRepository

	// Doctor endpoints.
	RegisterDoctorHandler     gin.HandlerFunc
	AuthenticateDoctorHandler gin.HandlerFunc
	GetDoctorHandler          gin.HandlerFunc
	UpdateDoctorHandler       gin.HandlerFunc
	DeleteDoctorHandler       gin.HandlerFunc
	RevokeDoctorTokenHandler  gin.HandlerFunc

	// Availability endpoints.
	GetDayScheduleHandler    gin.HandlerFunc
	SaveDayScheduleHandler   gin.HandlerFunc
	DeleteSlotHandler        gin.HandlerFunc
	ReplicateHandler         gin.HandlerFunc
	ReplicationResultHandler gin.HandlerFunc
	MonthStatusesHandler     gin.HandlerFunc
}
