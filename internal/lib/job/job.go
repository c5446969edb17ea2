// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - tasks are enqueued with asynq.Client
//   - an asynq.Server runs the workers that process them
package job

import (
	"context"
	"fmt"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (workers).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger

	notifier Notifier
	notifyTo string
}

// NewJobService creates a JobService on the configured Redis.
//
// Queue weights give "critical" about 6 of 10 workers, "default" 3 and "low" 1.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Mux registers every task handler.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskParcelCreated, j.handleParcelCreatedTask)
	return mux
}

// Start runs the workers in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(j.Mux()); err != nil {
		return fmt.Errorf("start job server: %w", err)
	}

	return nil
}

// EnqueueParcelCreated queues the post-commit parcel notification.
func (j *JobService) EnqueueParcelCreated(ctx context.Context, p ParcelCreatedPayload) error {
	task, err := NewParcelCreatedTask(p)
	if err != nil {
		return fmt.Errorf("build %s task: %w", TaskParcelCreated, err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s task: %w", TaskParcelCreated, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int64("parcel_id", p.ParcelID).
		Msg("Enqueued parcel task")

	return nil
}

// Stop shuts the workers down and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Warn().Err(err).Msg("Failed to close job client")
	}
}
