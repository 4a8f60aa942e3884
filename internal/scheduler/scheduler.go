// Package scheduler runs the recurring bulk lesson generation job. It keeps
// every active course's lesson plan filled out to a rolling horizon without
// anyone having to trigger generation by hand.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/okandemir/melodia/internal/app/services"
	"github.com/okandemir/melodia/internal/config"
	"github.com/okandemir/melodia/internal/pkg/logger"
	"github.com/okandemir/melodia/internal/pkg/schedule"
)

// Scheduler wraps a cron runner around the generation service.
type Scheduler struct {
	cron         *cron.Cron
	generation   *services.GenerationService
	horizonDays  int
	skipHolidays bool
}

// New builds a scheduler from the generation section of the config. Overlapping
// runs are skipped; generation is idempotent but there is no point doubling up.
func New(cfg *config.Config, generation *services.GenerationService) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
		generation:   generation,
		horizonDays:  cfg.Generation.HorizonDays,
		skipHolidays: cfg.Generation.SkipHolidays,
	}

	if _, err := s.cron.AddFunc(cfg.Generation.CronSchedule, s.run); err != nil {
		return nil, err
	}

	return s, nil
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info().Int("horizonDays", s.horizonDays).Bool("skipHolidays", s.skipHolidays).
		Msg("Scheduled lesson generation started")
}

// Stop stops the cron runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Scheduled lesson generation stopped")
}

// run generates lessons for all active courses from today through the
// configured horizon.
func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	from := schedule.DateOf(time.Now().UTC())
	to := from.AddDate(0, 0, s.horizonDays)

	result, err := s.generation.GenerateBulk(ctx, from, to, s.skipHolidays)
	if err != nil {
		logger.Error().Err(err).Msg("Scheduled lesson generation failed")
		return
	}

	logger.Info().
		Int("coursesProcessed", result.CoursesProcessed).
		Int("totalCreated", result.TotalCreated).
		Int("totalSkipped", result.TotalSkipped).
		Msg("Scheduled lesson generation finished")
}
