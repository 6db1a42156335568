package tasks

import (
	"encoding/json"

	"medisched/models"

	"github.com/hibiken/asynq"
)

const TypeReplicateSchedule = "availability:replicate"

// NewReplicationTask builds the queued form of a weekday replication request.
func NewReplicationTask(payload models.ReplicationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReplicateSchedule, b)
	// Replication is not retried: a conflicted or failed date is reported
	// as skipped, and re-running is the doctor's explicit choice.
	opts := []asynq.Option{asynq.MaxRetry(0)}

	return task, opts, nil
}
