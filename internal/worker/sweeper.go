// Package worker runs the background maintenance jobs.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/logger"
)

// Sweeper periodically cleans up account state: guest identities past
// their lifetime are removed, and past-due subscriptions are lapsed so
// tier checks stop honoring them.
type Sweeper struct {
	users user.Repository
	log   *logger.Logger
	cron  *cron.Cron
}

// NewSweeper creates a sweeper over the user repository
func NewSweeper(users user.Repository, log *logger.Logger) *Sweeper {
	return &Sweeper{
		users: users,
		log:   log,
		cron:  cron.New(),
	}
}

// Start schedules the hourly sweep and runs one immediately
func (s *Sweeper) Start() {
	s.cron.AddFunc("@hourly", s.sweep)
	s.cron.Start()
	go s.sweep()
}

// Stop halts the schedule and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	expired, err := s.users.ExpireGuests(ctx)
	if err != nil {
		s.log.ErrorWithErr(err, "Guest expiry sweep failed")
	} else if expired > 0 {
		s.log.Info(fmt.Sprintf("Expired %d guest accounts", expired))
	}

	lapsed, err := s.users.LapsePastDue(ctx)
	if err != nil {
		s.log.ErrorWithErr(err, "Past-due sweep failed")
	} else if lapsed > 0 {
		s.log.Info(fmt.Sprintf("Lapsed %d past-due subscriptions", lapsed))
	}
}
