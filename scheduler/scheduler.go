package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"emlakjet_scraper/config"
	"emlakjet_scraper/scraper"
)

// Scheduler repeats whole collection runs on a cron expression or a fixed
// interval. Runs never overlap: a tick that arrives while a run is still
// going is dropped.
type Scheduler struct {
	cfg          *config.Config
	orchestrator *scraper.Orchestrator
	cron         *cron.Cron
	ticker       *time.Ticker
	stopCh       chan struct{}
	runningCh    chan struct{}
}

func New(cfg *config.Config, orchestrator *scraper.Orchestrator) *Scheduler {
	return &Scheduler{
		cfg:          cfg,
		orchestrator: orchestrator,
		cron:         cron.New(),
		stopCh:       make(chan struct{}),
		runningCh:    make(chan struct{}, 1),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	switch {
	case s.cfg.Scheduler.Cron != "":
		log.Printf("scheduler: cron %q", s.cfg.Scheduler.Cron)
		_, err := s.cron.AddFunc(s.cfg.Scheduler.Cron, func() { s.runOnce(ctx) })
		if err != nil {
			return fmt.Errorf("invalid cron expression: %w", err)
		}
		s.cron.Start()
	case s.cfg.Scheduler.Interval > 0:
		log.Printf("scheduler: interval %s", s.cfg.Scheduler.Interval)
		s.ticker = time.NewTicker(s.cfg.Scheduler.Interval)
		go func() {
			for {
				select {
				case <-s.ticker.C:
					s.runOnce(ctx)
				case <-s.stopCh:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	default:
		return fmt.Errorf("daemon mode needs SCRAPE_CRON or SCRAPE_INTERVAL")
	}

	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.stopCh)
}

func (s *Scheduler) runOnce(ctx context.Context) {
	select {
	case s.runningCh <- struct{}{}:
	default:
		log.Println("scheduler: previous run still in progress, skipping tick")
		return
	}
	defer func() { <-s.runningCh }()

	if err := s.orchestrator.Run(ctx); err != nil {
		log.Printf("scheduled run error: %v", err)
	}
}
