package service

import (
	"time"

	"github.com/neeleshs/listara/internal/database"
	"github.com/neeleshs/listara/pkg/clock"
	"github.com/sirupsen/logrus"
)

// A SweepService deletes every list that has not been touched within the
// retention window, cascading to its items. It runs opportunistically at the
// start of list-creation requests; there is no background scheduler.
type SweepService struct {
	db        database.Client
	clock     clock.Clock
	retention time.Duration
	// Populated during Execute()
	Deleted int
}

// NewSweep returns a service used for sweeping expired lists.
func NewSweep(db database.Client, c clock.Clock, retention time.Duration) *SweepService {
	return &SweepService{
		db:        db,
		clock:     c,
		retention: retention,
	}
}

// Execute performs the sweep. Deleting an already deleted list is a no-op, so
// redundant sweeps triggered by concurrent creation requests are harmless.
func (s *SweepService) Execute() error {
	threshold := s.clock.Now().UTC().Add(-s.retention)

	lists, err := s.db.FindListsUpdatedBefore(threshold)
	if err != nil {
		return err
	}

	for _, list := range lists {
		if err := s.db.DeleteList(list.ID); err != nil {
			return err
		}
		s.Deleted++
	}

	if s.Deleted > 0 {
		logrus.Infof("deleted %d lists not accessed in the last %s", s.Deleted, s.retention)
	}
	return nil
}
