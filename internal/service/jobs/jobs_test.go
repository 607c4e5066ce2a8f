package jobs

import (
	"errors"
	"testing"

	"kakunin/internal/utils"
)

type fakeOrphanRepo struct {
	swept int64
	calls int
	err   error
}

func (r *fakeOrphanRepo) DeleteOrphans() (int64, error) {
	r.calls++
	return r.swept, r.err
}

func TestOrphanSweeper_Sweep(t *testing.T) {
	repo := &fakeOrphanRepo{swept: 3}
	sweeper := NewOrphanSweeper(repo)

	sweeper.sweep()
	if repo.calls != 1 {
		t.Fatalf("expected one sweep call, got %d", repo.calls)
	}

	repo.err = errors.New("locked")
	sweeper.sweep() // must not panic on repo failure
	if repo.calls != 2 {
		t.Fatalf("expected two sweep calls, got %d", repo.calls)
	}
}

type fakeExpiryRepo struct {
	cutoffs []int64
}

func (r *fakeExpiryRepo) DeleteExpired(before int64) error {
	r.cutoffs = append(r.cutoffs, before)
	return nil
}

func TestAddressCacheCleaner_CutoffHonorsTTL(t *testing.T) {
	repo := &fakeExpiryRepo{}
	cleaner := NewAddressCacheCleaner(repo)

	before := utils.NowUTC()
	cleaner.cleanup()
	after := utils.NowUTC()

	if len(repo.cutoffs) != 1 {
		t.Fatalf("expected one delete call, got %d", len(repo.cutoffs))
	}

	cutoff := repo.cutoffs[0]
	if cutoff < before-CacheTTLMillis || cutoff > after-CacheTTLMillis {
		t.Fatalf("cutoff %d not one TTL behind now", cutoff)
	}
}
