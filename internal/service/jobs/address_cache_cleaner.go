package jobs

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"

	"kakunin/internal/utils"
)

const (
	CacheTTLMillis = 24 * 60 * 60 * 1000
	CleanInterval  = 1 * time.Hour
)

type AddressCacheRepository interface {
	DeleteExpired(before int64) error
}

type AddressCacheCleaner struct {
	addressRepo AddressCacheRepository
}

func NewAddressCacheCleaner(repo AddressCacheRepository) *AddressCacheCleaner {
	return &AddressCacheCleaner{addressRepo: repo}
}

func (a *AddressCacheCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(CleanInterval)
	defer ticker.Stop()

	log.Info("Address cache cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping address cache cleaner...")
			return
		case <-ticker.C:
			a.cleanup()
		}
	}
}

func (a *AddressCacheCleaner) cleanup() {
	cutoff := utils.NowUTC() - CacheTTLMillis

	if err := a.addressRepo.DeleteExpired(cutoff); err != nil {
		log.Errorf("Cleaner: failed to delete expired address cache: %v", err)
		return
	}

	log.Debugf("Cleaner: successfully swept address caches older than %d", cutoff)
}
