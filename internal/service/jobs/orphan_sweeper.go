package jobs

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"
)

const SweepInterval = 1 * time.Hour

type OrphanRepository interface {
	DeleteOrphans() (int64, error)
}

// OrphanSweeper periodically removes related rows whose project was
// deleted. Project deletion only drops the project row, so the sweeper
// reconciles the rest.
type OrphanSweeper struct {
	orphanRepo OrphanRepository
}

func NewOrphanSweeper(repo OrphanRepository) *OrphanSweeper {
	return &OrphanSweeper{orphanRepo: repo}
}

func (o *OrphanSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	log.Info("Orphan sweeper cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping orphan sweeper...")
			return
		case <-ticker.C:
			o.sweep()
		}
	}
}

func (o *OrphanSweeper) sweep() {
	swept, err := o.orphanRepo.DeleteOrphans()
	if err != nil {
		log.Errorf("Sweeper: failed to delete orphaned rows: %v", err)
		return
	}

	if swept > 0 {
		log.Infof("Sweeper: removed %d orphaned rows", swept)
	}
}
