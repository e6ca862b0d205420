// Package scheduler runs the engine's periodic sweeps on cron expressions
// evaluated in one reference time zone.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"ad-budget/internal/core/port"
)

var (
	// ErrUnknownJob is returned by RunNow for a name that was not registered.
	ErrUnknownJob = errors.New("unknown job")
	// ErrJobRunning is returned by RunNow while the same job is in progress.
	ErrJobRunning = errors.New("job already running")
)

// RunFunc is one sweep of the engine.
type RunFunc func(ctx context.Context) (port.SweepReport, error)

// Job binds a sweep to its cron expression.
type Job struct {
	Name string
	Spec string
	Run  RunFunc
}

type entry struct {
	Job
	mu sync.Mutex // held while the job runs
}

// Scheduler holds the name → cron expression table. Jobs are fixed at
// construction; a job never overlaps with itself, whether triggered by cron
// or by RunNow.
type Scheduler struct {
	cron   *cron.Cron
	jobs   map[string]*entry
	logger *slog.Logger
}

// New validates every job spec and prepares a cron runner in loc.
func New(loc *time.Location, logger *slog.Logger, jobs ...Job) (*Scheduler, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cl := cronLogger{logger: logger}

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl)),
		),
		jobs:   make(map[string]*entry, len(jobs)),
		logger: logger,
	}
	for _, j := range jobs {
		if j.Name == "" || j.Run == nil {
			return nil, fmt.Errorf("job %q: name and run func are required", j.Name)
		}
		if _, ok := s.jobs[j.Name]; ok {
			return nil, fmt.Errorf("job %q registered twice", j.Name)
		}
		if _, err := cron.ParseStandard(j.Spec); err != nil {
			return nil, fmt.Errorf("job %q: parse %q: %w", j.Name, j.Spec, err)
		}
		s.jobs[j.Name] = &entry{Job: j}
	}
	return s, nil
}

// Names returns the registered job names in lexical order.
func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start registers the jobs with cron and starts it in the background.
// Scheduled runs receive ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	ids := make(map[string]cron.EntryID, len(s.jobs))
	for _, name := range s.Names() {
		e := s.jobs[name]
		id, err := s.cron.AddFunc(e.Spec, func() {
			if _, err := s.run(ctx, e, "cron"); errors.Is(err, ErrJobRunning) {
				s.logger.Warn("skipping overlapping run", slog.String("job", e.Name))
			}
		})
		if err != nil {
			return fmt.Errorf("job %q: %w", e.Name, err)
		}
		ids[name] = id
	}
	s.cron.Start()

	for _, name := range s.Names() {
		s.logger.Info("job scheduled",
			slog.String("job", name),
			slog.String("spec", s.jobs[name].Spec),
			slog.Time("next", s.cron.Entry(ids[name]).Next))
	}
	return nil
}

// Stop halts cron and returns a context that is done once running jobs
// have completed.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RunNow runs the named job synchronously and returns its report.
func (s *Scheduler) RunNow(ctx context.Context, name string) (port.SweepReport, error) {
	e, ok := s.jobs[name]
	if !ok {
		return port.SweepReport{}, fmt.Errorf("%w: %q", ErrUnknownJob, name)
	}
	return s.run(ctx, e, "manual")
}

func (s *Scheduler) run(ctx context.Context, e *entry, trigger string) (port.SweepReport, error) {
	if !e.mu.TryLock() {
		return port.SweepReport{}, fmt.Errorf("%w: %q", ErrJobRunning, e.Name)
	}
	defer e.mu.Unlock()

	s.logger.Debug("job started", slog.String("job", e.Name), slog.String("trigger", trigger))
	return e.Run(ctx)
}

// cronLogger adapts slog to cron.Logger. Cron's own info chatter goes to
// debug level.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
