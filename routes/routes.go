package routes

import (
	"net/http"
	"time"

	"medisched/handlers"
	"medisched/middleware"
	"medisched/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDoctorRoutes registers doctor account endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.POST("/register", hb.RegisterDoctorHandler)
		api.POST("/login", hb.AuthenticateDoctorHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.GET("/me", hb.GetDoctorHandler)
		api.PATCH("/me", hb.UpdateDoctorHandler)
		api.DELETE("/me", hb.DeleteDoctorHandler)
		api.DELETE("/revoke", hb.RevokeDoctorTokenHandler)
	}
}

// RegisterAvailabilityRoutes registers the scheduling endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.GET("/statuses", hb.MonthStatusesHandler)
		api.POST("/replicate", hb.ReplicateHandler)
		api.GET("/replicate/:requestID", hb.ReplicationResultHandler)
		api.GET("/day/:date", hb.GetDayScheduleHandler)
		api.PUT("/day/:date", hb.SaveDayScheduleHandler)
		api.DELETE("/day/:date/slots/:slotID", hb.DeleteSlotHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDoctorRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterHealthRoute(r)
}
