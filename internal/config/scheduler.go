package config

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// IdleSweeper closes attempts nobody has touched for a while.
type IdleSweeper interface {
	SweepIdle(ctx context.Context) int
}

// Scheduler runs background jobs until Stop.
type Scheduler struct {
	scheduler *gocron.Scheduler
	log       *logrus.Logger
}

func NewScheduler(log *logrus.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{scheduler: s, log: log}
}

// EveryIdleSweep schedules the sweeper. A non-positive interval disables it.
func (s *Scheduler) EveryIdleSweep(interval time.Duration, sweeper IdleSweeper) error {
	if interval <= 0 {
		s.log.Info("Idle attempt sweep disabled")
		return nil
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		sweeper.SweepIdle(context.Background())
	})
	return err
}

func (s *Scheduler) Start() {
	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}
