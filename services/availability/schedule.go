// File: services/availability/schedule.go
package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medisched/models"
	"medisched/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// GetDaySchedule fetches the persisted slots for a date and derives its status.
func (s *DefaultAvailabilityService) GetDaySchedule(ctx context.Context, doctorID, date string) (*models.DayScheduleDTO, error) {
	day, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	slots, err := s.Repo.GetByDoctorIDAndDate(ctx, doctorID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch day schedule: %w", err)
	}

	return &models.DayScheduleDTO{
		Date:      day,
		Status:    Classify(slots),
		TimeSlots: slotsToWire(slots),
	}, nil
}

// SaveDaySchedule validates the complete slot set for the date and
// replaces whatever is persisted there. Save is all-or-nothing per date:
// a single rejected slot fails the whole request with the specific
// reason, and nothing is written.
func (s *DefaultAvailabilityService) SaveDaySchedule(ctx context.Context, doctorID string, req models.SaveDayScheduleRequest) (*models.DayScheduleDTO, error) {
	day, err := NormalizeDate(req.Date)
	if err != nil {
		return nil, err
	}

	slots, err := slotsFromWire(req.TimeSlots, day)
	if err != nil {
		return nil, err
	}

	if res, idx := ValidateSet(slots); !res.Ok() {
		return nil, &ValidationError{Result: res, SlotIndex: idx}
	}

	saved, err := s.Repo.ReplaceByDate(ctx, doctorID, day, slots)
	if err != nil {
		return nil, fmt.Errorf("failed to save day schedule: %w", err)
	}

	s.invalidateStatusCache(ctx, doctorID, day)

	return &models.DayScheduleDTO{
		Date:      day,
		Status:    Classify(saved),
		TimeSlots: slotsToWire(saved),
	}, nil
}

// DeleteSlot removes one slot unconditionally and returns the updated day.
func (s *DefaultAvailabilityService) DeleteSlot(ctx context.Context, doctorID, date, slotID string) (*models.DayScheduleDTO, error) {
	day, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.DeleteByID(ctx, doctorID, slotID, day); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to delete slot: %w", err)
	}

	s.invalidateStatusCache(ctx, doctorID, day)

	remaining, err := s.Repo.GetByDoctorIDAndDate(ctx, doctorID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remaining slots: %w", err)
	}
	return &models.DayScheduleDTO{
		Date:      day,
		Status:    Classify(remaining),
		TimeSlots: slotsToWire(remaining),
	}, nil
}

// ReplicateToWeekdays copies the source date's schedule onto every
// Monday-Friday date of the target month, skipping dates whose existing
// slots would conflict.
func (s *DefaultAvailabilityService) ReplicateToWeekdays(ctx context.Context, doctorID, sourceDate string, month, year int) (models.ReplicationSummary, error) {
	logger := utils.GetLogger()

	day, err := NormalizeDate(sourceDate)
	if err != nil {
		return models.ReplicationSummary{}, err
	}

	source, err := s.Repo.GetByDoctorIDAndDate(ctx, doctorID, day)
	if err != nil {
		return models.ReplicationSummary{}, fmt.Errorf("failed to fetch source schedule: %w", err)
	}

	fetch := func(ctx context.Context, date string) ([]models.TimeSlot, error) {
		return s.Repo.GetByDoctorIDAndDate(ctx, doctorID, date)
	}
	persist := func(ctx context.Context, date string, slots []models.TimeSlot) error {
		_, err := s.Repo.ReplaceByDate(ctx, doctorID, date, slots)
		return err
	}

	summary, err := ApplyToWeekdays(ctx, source, month, year, fetch, persist)
	if err != nil {
		return summary, err
	}

	s.invalidateMonthCache(ctx, doctorID, month, year)

	logger.Info("Replicated schedule across weekdays",
		zap.String("doctorID", doctorID),
		zap.String("sourceDate", day),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("applied", summary.Applied),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

// MonthStatuses derives the OFF/PARTIAL/FULL label for every date of the
// month, serving from the Redis cache when possible.
func (s *DefaultAvailabilityService) MonthStatuses(ctx context.Context, doctorID string, month, year int) (*models.MonthStatusesDTO, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	key := statusCacheKey(doctorID, month, year)
	if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
		var dto models.MonthStatusesDTO
		if err := json.Unmarshal([]byte(cached), &dto); err == nil {
			return &dto, nil
		}
	}

	from, to := MonthBounds(month, year)
	slots, err := s.Repo.GetByDoctorIDAndDateRange(ctx, doctorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month schedule: %w", err)
	}

	byDate := make(map[string][]models.TimeSlot)
	for _, slot := range slots {
		byDate[slot.Date] = append(byDate[slot.Date], slot)
	}

	statuses := make(map[string]models.AvailabilityStatus)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == time.Month(month); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		statuses[date] = Classify(byDate[date])
	}

	dto := &models.MonthStatusesDTO{Month: month, Year: year, Statuses: statuses}

	if payload, err := json.Marshal(dto); err == nil {
		s.Cache.Set(ctx, key, payload, utils.StatusCacheTTL)
	}
	return dto, nil
}

func statusCacheKey(doctorID string, month, year int) string {
	return fmt.Sprintf("%s%s:%04d-%02d", utils.StatusCachePrefix, doctorID, year, month)
}

// invalidateStatusCache drops the cached month containing the given date.
func (s *DefaultAvailabilityService) invalidateStatusCache(ctx context.Context, doctorID, date string) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return
	}
	s.invalidateMonthCache(ctx, doctorID, int(d.Month()), d.Year())
}

func (s *DefaultAvailabilityService) invalidateMonthCache(ctx context.Context, doctorID string, month, year int) {
	if err := s.Cache.Del(ctx, statusCacheKey(doctorID, month, year)).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate status cache",
			zap.String("doctorID", doctorID), zap.Error(err))
	}
}
