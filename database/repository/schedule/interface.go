// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"medisched/database"
	"medisched/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository persists per-doctor, per-date availability slots.
// Saving is whole-day replacement: the slot set for a date is swapped out
// atomically from the caller's point of view, never patched slot by slot.
type ScheduleRepository interface {
	ReplaceByDate(ctx context.Context, doctorID, date string, slots []models.TimeSlot) ([]models.TimeSlot, error)
	GetByDoctorIDAndDate(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error)
	GetByDoctorIDAndDateRange(ctx context.Context, doctorID, from, to string) ([]models.TimeSlot, error)
	DeleteByID(ctx context.Context, doctorID, slotID, date string) error
	EnsureIndexes() error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("schedules"),
	}
}
