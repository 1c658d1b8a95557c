package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Sharif-Hamza/novanews/internal/generator"
	"github.com/Sharif-Hamza/novanews/internal/lifecycle"
)

const tickInterval = 60 * time.Second

type Status struct {
	Running    bool
	NextUpdate time.Time
	LastRun    time.Time
	LastStats  generator.Stats
}

// Scheduler ticks every minute, compares now against the precomputed
// next-update timestamp, and triggers a generation run when due. A
// single boolean flag guards against overlapping runs. The lifecycle
// sweep runs on every tick.
type Scheduler struct {
	generator      *generator.Generator
	sweeper        *lifecycle.Sweeper
	updateInterval time.Duration

	mu         sync.Mutex
	running    bool
	nextUpdate time.Time
	lastRun    time.Time
	lastStats  generator.Stats
}

func New(gen *generator.Generator, sweeper *lifecycle.Sweeper, updateInterval time.Duration) *Scheduler {
	return &Scheduler{
		generator:      gen,
		sweeper:        sweeper,
		updateInterval: updateInterval,
		nextUpdate:     time.Now(),
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	slog.Info("scheduler started", "update_interval", s.updateInterval.String())

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped")
			return
		case now := <-ticker.C:
			s.tick(now)
		}
	}
}

func (s *Scheduler) tick(now time.Time) {
	if s.dueForUpdate(now) {
		go s.runGeneration(now)
	}

	s.sweeper.Sweep(now)
}

// dueForUpdate claims the run if one is due; the caller must follow up
// with runGeneration, which clears the flag.
func (s *Scheduler) dueForUpdate(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Before(s.nextUpdate) {
		return false
	}

	if s.running {
		slog.Warn("generation run still in progress, skipping trigger")
		return false
	}

	s.running = true
	return true
}

func (s *Scheduler) runGeneration(now time.Time) {
	stats := s.generator.Run()

	s.mu.Lock()
	s.running = false
	s.lastRun = now
	s.lastStats = stats
	s.nextUpdate = now.Add(s.updateInterval)
	s.mu.Unlock()
}

func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Running:    s.running,
		NextUpdate: s.nextUpdate,
		LastRun:    s.lastRun,
		LastStats:  s.lastStats,
	}
}
