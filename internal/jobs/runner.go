package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Job периодическая задача
type Job struct {
	Name     string
	Schedule string // cron выражение, например "0 21 * * *" или "@every 1m"
	Run      func(ctx context.Context)
	Timeout  time.Duration
}

// Runner планировщик фоновых задач
type Runner struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
	logger Logger
}

// NewRunner создает планировщик в часовом поясе location (nil - локальная зона)
func NewRunner(location *time.Location, logger Logger) *Runner {
	if location == nil {
		location = time.Local
	}

	cronLogger := cron.PrintfLogger(logger)
	ctx, cancel := context.WithCancel(context.Background())

	return &Runner{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// Add регистрирует задачу; пустое расписание отключает ее
func (r *Runner) Add(job Job) error {
	if job.Schedule == "" {
		r.logger.Info("Jobs: %s is disabled", job.Name)
		return nil
	}

	_, err := r.cron.AddFunc(job.Schedule, func() {
		ctx := r.ctx
		if job.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, job.Timeout)
			defer cancel()
		}

		started := time.Now()
		job.Run(ctx)
		r.logger.Info("Jobs: %s finished in %s", job.Name, time.Since(started).Round(time.Millisecond))
	})
	if err != nil {
		return fmt.Errorf("jobs: invalid schedule %q for %s: %w", job.Schedule, job.Name, err)
	}

	r.logger.Info("Jobs: %s scheduled at %q", job.Name, job.Schedule)
	return nil
}

// Start запускает планировщик в фоне
func (r *Runner) Start() {
	r.cron.Start()
}

// Stop останавливает планировщик и ждет завершения выполняющихся задач (не дольше ctx)
func (r *Runner) Stop(ctx context.Context) error {
	stopped := r.cron.Stop()
	defer r.cancel()

	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
