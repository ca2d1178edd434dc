package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-exchange-rates/internal/logger"
)

// Job is one unit of periodic work.
type Job interface {
	Run(ctx context.Context) (int, error)
}

// Scheduler triggers a Job at a fixed interval. A run that is still in progress
// when the next tick fires is never overlapped; the tick is rescheduled.
type Scheduler struct {
	job      Job
	interval time.Duration

	mu    sync.Mutex
	sched gocron.Scheduler
}

func New(job Job, interval time.Duration) *Scheduler {
	return &Scheduler{job: job, interval: interval}
}

// Start runs the job immediately and then every interval until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return errors.New("scheduler interval must be positive")
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	task := func(jobCtx context.Context) {
		execID := uuid.NewString()
		count, err := s.job.Run(jobCtx)
		if err != nil {
			logger.Log.Errorw("scheduled run failed", "exec_id", execID, "error", err)
			return
		}
		logger.Log.Infow("scheduled run finished", "exec_id", execID, "count", count)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(task),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return err
	}

	s.mu.Lock()
	s.sched = sched
	s.mu.Unlock()
	sched.Start()

	go func() {
		<-ctx.Done()
		if err := s.Shutdown(); err != nil {
			logger.Log.Errorw("scheduler shutdown error", "error", err)
		}
	}()
	return nil
}

// Shutdown stops the scheduler. It is safe to call more than once.
func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
