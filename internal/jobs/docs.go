// Package jobs provides the background machinery of the tours service.
//
// # Components
//
// WorkerPool is a bounded in-memory task queue. Admission is a
// golang.org/x/sync/semaphore slot per running or queued task; an errgroup
// with a limit caps how many run at once. Booking notifications and contact
// messages are submitted to it after the request has been answered.
//
// NotificationRetryJob runs on a github.com/robfig/cron/v3 schedule and hands
// failed deliveries, and pending ones that have waited past the staleness
// window, back to the worker pool.
//
// # Usage
//
//	pool := jobs.NewWorkerPool(2, 64, 30*time.Second, logger)
//	retry := jobs.NewNotificationRetryJob(retryHandler, "@every 1m", 5*time.Minute, logger)
//	manager := jobs.NewJobManager(pool, retry)
//
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll(shutdownCtx)
//
// # Error Handling
//
//   - Task errors and panics are logged with the task's correlation id and never stop a worker
//   - A full queue is reported to the submitter as ports.ErrTaskQueueFull
//   - Failed job starts stop the already running worker pool
package jobs
