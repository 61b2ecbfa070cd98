package jobs

import (
	"context"
	"fmt"
)

// JobManager coordinates the background machinery of the application: the
// notification worker pool and the scheduled retry job.
type JobManager struct {
	workerPool *WorkerPool
	retryJob   *NotificationRetryJob
}

func NewJobManager(workerPool *WorkerPool, retryJob *NotificationRetryJob) *JobManager {
	return &JobManager{
		workerPool: workerPool,
		retryJob:   retryJob,
	}
}

// StartAll starts the worker pool first so the retry job always has somewhere
// to submit to.
func (jm *JobManager) StartAll() error {
	jm.workerPool.Start()

	if err := jm.retryJob.Start(); err != nil {
		_ = jm.workerPool.Stop(context.Background())
		return fmt.Errorf("failed to start notification retry job: %w", err)
	}

	return nil
}

// StopAll stops the retry job, then drains the worker pool within ctx.
func (jm *JobManager) StopAll(ctx context.Context) error {
	jm.retryJob.Stop()
	return jm.workerPool.Stop(ctx)
}
