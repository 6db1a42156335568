package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"medisched/config"
	"medisched/models"
	"medisched/services/availability"
	"medisched/services/tasks"
	"medisched/utils"

	"github.com/hibiken/asynq"
)

// InitReplicationWorker runs the async replication worker in background.
func InitReplicationWorker(availSvc availability.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1, // replication runs must not interleave
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReplicateSchedule, handleReplicationTask(availSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReplicationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReplicationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReplicationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReplicationTask(availSvc availability.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReplicationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReplicationHandler] Invalid payload: %v", err)
			return err
		}

		summary, err := availSvc.ReplicateToWeekdays(ctx, p.DoctorID, p.SourceDate, p.Month, p.Year)
		result := map[string]interface{}{
			"requestId": p.RequestID,
			"applied":   summary.Applied,
			"skipped":   summary.Skipped,
		}
		if err != nil {
			result["error"] = err.Error()
		}

		// The summary is stored for the caller to poll; the task itself
		// never retries (per-date failures already count as skipped).
		payload, merr := json.Marshal(result)
		if merr != nil {
			return merr
		}
		key := utils.ReplicationResultPrefix + p.RequestID
		if serr := utils.GetCacheClient().Set(ctx, key, payload, utils.ReplicationResultTTL).Err(); serr != nil {
			log.Printf("[ReplicationHandler] Failed to store result: %v", serr)
		}
		return nil
	}
}
