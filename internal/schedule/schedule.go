// Package schedule requests backups on a cron schedule.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/raoulx24/save-archiver/internal/logging"
	"github.com/raoulx24/save-archiver/internal/mailbox"
	"github.com/raoulx24/save-archiver/internal/worker"
)

// Scheduler puts a backup job in the mailbox on every tick of its schedule.
// An empty spec disables it.
type Scheduler struct {
	spec  string
	sched cron.Schedule
	cron  *cron.Cron
	log   logging.Logger
	mb    *mailbox.Mailbox[worker.Job]
}

// New parses spec (standard five fields, or descriptors such as "@hourly"
// and "@every 30m").
func New(spec string, log logging.Logger, mb *mailbox.Mailbox[worker.Job]) (*Scheduler, error) {
	s := &Scheduler{spec: spec, log: log, mb: mb}
	if spec == "" {
		return s, nil
	}

	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule %q: %w", spec, err)
	}
	s.sched = sched
	s.cron = cron.New(cron.WithLogger(cronLogger{log}))
	s.cron.Schedule(sched, cron.FuncJob(s.tick))
	return s, nil
}

// Enabled reports whether a schedule was configured.
func (s *Scheduler) Enabled() bool {
	return s.sched != nil
}

// Next returns the first activation after t, or the zero time when disabled.
func (s *Scheduler) Next(t time.Time) time.Time {
	if s.sched == nil {
		return time.Time{}
	}
	return s.sched.Next(t)
}

// Start runs the schedule until ctx ends.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.cron == nil {
		s.log.Info("no backup schedule configured")
		<-ctx.Done()
		return nil
	}

	s.log.Info("starting scheduler", "schedule", s.spec, "next", s.Next(time.Now()))
	s.cron.Start()
	<-ctx.Done()

	// wait for a tick in progress
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}

func (s *Scheduler) tick() {
	s.mb.Put(worker.Job{Reason: worker.ReasonSchedule, At: time.Now()})
	s.log.Debug("scheduled backup queued")
}

// cronLogger adapts the application logger to cron's logging interface.
type cronLogger struct {
	log logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
