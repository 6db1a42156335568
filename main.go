// File: medisched/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medisched/config"
	"medisched/cron"
	"medisched/database"
	doctorRepoPkg "medisched/database/repository/doctor"
	scheduleRepoPkg "medisched/database/repository/schedule"
	"medisched/handlers"
	"medisched/middleware"
	"medisched/routes"
	"medisched/services/availability"
	"medisched/services/doctor"
	"medisched/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	schedRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	if err := docRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure doctor indexes: %v", err)
	}
	if err := schedRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure schedule indexes: %v", err)
	}

	// task queue client for async replication.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// services.
	doctorService, err := doctor.NewDefaultDoctorService(docRepo, utils.GetAuthCacheClient())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize doctor service: %v", err)
	}
	availabilityService, err := availability.NewDefaultAvailabilityService(schedRepo, utils.GetCacheClient(), asynqClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize availability service: %v", err)
	}

	doctorHandler := handlers.NewDoctorHandler(doctorService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		DoctorRepo: docRepo,

		// Doctor endpoints.
		RegisterDoctorHandler:     doctorHandler.RegisterDoctorHandler,
		AuthenticateDoctorHandler: doctorHandler.AuthenticateDoctorHandler,
		GetDoctorHandler:          doctorHandler.GetDoctorHandler,
		UpdateDoctorHandler:       doctorHandler.UpdateDoctorHandler,
		DeleteDoctorHandler:       doctorHandler.DeleteDoctorHandler,
		RevokeDoctorTokenHandler:  doctorHandler.RevokeDoctorTokenHandler,

		// Availability endpoints.
		GetDayScheduleHandler:    availabilityHandler.GetDayScheduleHandler,
		SaveDayScheduleHandler:   availabilityHandler.SaveDayScheduleHandler,
		DeleteSlotHandler:        availabilityHandler.DeleteSlotHandler,
		ReplicateHandler:         availabilityHandler.ReplicateHandler,
		ReplicationResultHandler: availabilityHandler.ReplicationResultHandler,
		MonthStatusesHandler:     availabilityHandler.MonthStatusesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background replication worker and health monitor.
	cron.InitReplicationWorker(availabilityService)
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetAuthCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
