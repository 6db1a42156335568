// File: services/availability/interface.go
package availability

import (
	"context"
	"fmt"

	scheduleRepo "medisched/database/repository/schedule"
	"medisched/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// Service is the doctor-facing availability API.
type Service interface {
	GetDaySchedule(ctx context.Context, doctorID, date string) (*models.DayScheduleDTO, error)
	SaveDaySchedule(ctx context.Context, doctorID string, req models.SaveDayScheduleRequest) (*models.DayScheduleDTO, error)
	DeleteSlot(ctx context.Context, doctorID, date, slotID string) (*models.DayScheduleDTO, error)
	ReplicateToWeekdays(ctx context.Context, doctorID, sourceDate string, month, year int) (models.ReplicationSummary, error)
	EnqueueReplication(ctx context.Context, doctorID string, req models.ReplicateRequest) (string, error)
	ReplicationResult(ctx context.Context, requestID string) (map[string]interface{}, error)
	MonthStatuses(ctx context.Context, doctorID string, month, year int) (*models.MonthStatusesDTO, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo        scheduleRepo.ScheduleRepository
	Cache       *redis.Client
	AsynqClient *asynq.Client
}

// NewDefaultAvailabilityService wires the service with its dependencies.
func NewDefaultAvailabilityService(repo scheduleRepo.ScheduleRepository, cache *redis.Client, asynqClient *asynq.Client) (*DefaultAvailabilityService, error) {
	if repo == nil || cache == nil || asynqClient == nil {
		return nil, fmt.Errorf("availability service initialization error: one or more dependencies are nil")
	}
	return &DefaultAvailabilityService{Repo: repo, Cache: cache, AsynqClient: asynqClient}, nil
}
