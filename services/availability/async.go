// File: services/availability/async.go
package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"medisched/models"
	"medisched/services/tasks"
	"medisched/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// EnqueueReplication queues a replication run for the background worker
// and returns the request id the caller polls for the summary.
func (s *DefaultAvailabilityService) EnqueueReplication(ctx context.Context, doctorID string, req models.ReplicateRequest) (string, error) {
	day, err := NormalizeDate(req.SourceDate)
	if err != nil {
		return "", err
	}
	if req.Month < 1 || req.Month > 12 {
		return "", ErrInvalidMonth
	}

	payload := models.ReplicationPayload{
		RequestID:  uuid.New().String(),
		DoctorID:   doctorID,
		SourceDate: day,
		Month:      req.Month,
		Year:       req.Year,
	}
	task, opts, err := tasks.NewReplicationTask(payload)
	if err != nil {
		return "", fmt.Errorf("failed to build replication task: %w", err)
	}
	if _, err := s.AsynqClient.EnqueueContext(ctx, task, opts...); err != nil {
		return "", fmt.Errorf("failed to enqueue replication task: %w", err)
	}
	return payload.RequestID, nil
}

// ReplicationResult fetches the stored summary of an async replication run.
func (s *DefaultAvailabilityService) ReplicationResult(ctx context.Context, requestID string) (map[string]interface{}, error) {
	raw, err := s.Cache.Get(ctx, utils.ReplicationResultPrefix+requestID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrReplicationResultNotFound
		}
		return nil, fmt.Errorf("failed to fetch replication result: %w", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode replication result: %w", err)
	}
	return result, nil
}
