// Package scheduler drives the four periodic simulation jobs. Each job
// runs on its own interval in its own goroutine; a tick that is still
// running when the next one fires makes the new tick a no-op.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Job is one periodic unit of simulation work.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a bare function to Job.
type JobFunc func(ctx context.Context) error

func (f JobFunc) Run(ctx context.Context) error { return f(ctx) }

type jobEntry struct {
	name     string
	interval time.Duration
	job      Job

	busy    atomic.Bool
	mu      sync.Mutex
	lastRun time.Time
	lastErr error
}

// JobStatus is a point-in-time view of one job for the status endpoint.
type JobStatus struct {
	Name     string    `json:"name"`
	Interval string    `json:"interval"`
	Busy     bool      `json:"busy"`
	LastRun  time.Time `json:"last_run,omitempty"`
	LastErr  string    `json:"last_error,omitempty"`
}

// Status is a point-in-time view of the scheduler.
type Status struct {
	Running   bool        `json:"running"`
	StartedAt time.Time   `json:"started_at,omitempty"`
	Jobs      []JobStatus `json:"jobs"`
}

// Scheduler owns the job goroutines. It starts Stopped; Start and Stop
// are idempotent and safe to call from the API concurrently.
type Scheduler struct {
	log  *zap.Logger
	jobs []*jobEntry

	mu        sync.Mutex
	running   bool
	startedAt time.Time
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

func New(log *zap.Logger) *Scheduler {
	return &Scheduler{log: log}
}

// Register adds a job. Must be called before Start.
func (s *Scheduler) Register(name string, interval time.Duration, job Job) {
	s.jobs = append(s.jobs, &jobEntry{name: name, interval: interval, job: job})
}

// Start launches one goroutine per registered job. Calling Start on a
// running scheduler does nothing.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true
	s.startedAt = time.Now().UTC()

	for _, entry := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, entry)
	}
	s.log.Info("scheduler started", zap.Int("jobs", len(s.jobs)))
}

// Stop cancels every job context and waits for in-flight ticks to return.
// Calling Stop on a stopped scheduler does nothing.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	s.mu.Unlock()

	cancel()
	s.wg.Wait()
	s.log.Info("scheduler stopped")
}

// Running reports whether the scheduler is started.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Status snapshots the scheduler and every job.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	st := Status{Running: s.running}
	if s.running {
		st.StartedAt = s.startedAt
	}
	s.mu.Unlock()

	for _, entry := range s.jobs {
		entry.mu.Lock()
		js := JobStatus{
			Name:     entry.name,
			Interval: entry.interval.String(),
			Busy:     entry.busy.Load(),
			LastRun:  entry.lastRun,
		}
		if entry.lastErr != nil {
			js.LastErr = entry.lastErr.Error()
		}
		entry.mu.Unlock()
		st.Jobs = append(st.Jobs, js)
	}
	return st
}

func (s *Scheduler) loop(ctx context.Context, entry *jobEntry) {
	defer s.wg.Done()

	ticker := time.NewTicker(entry.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx, entry)
		}
	}
}

// runOnce executes one tick under the job's single-flight guard.
func (s *Scheduler) runOnce(ctx context.Context, entry *jobEntry) {
	if !entry.busy.CompareAndSwap(false, true) {
		s.log.Warn("tick skipped, previous run still in flight",
			zap.String("job", entry.name))
		return
	}
	defer entry.busy.Store(false)

	start := time.Now()
	err := entry.job.Run(ctx)

	entry.mu.Lock()
	entry.lastRun = start.UTC()
	entry.lastErr = err
	entry.mu.Unlock()

	if err != nil && ctx.Err() == nil {
		s.log.Error("tick finished with failures",
			zap.String("job", entry.name),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return
	}
	s.log.Debug("tick finished",
		zap.String("job", entry.name),
		zap.Duration("elapsed", time.Since(start)))
}
