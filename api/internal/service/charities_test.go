package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"watchdog/api/internal/config"
	"watchdog/api/internal/domain"
	"watchdog/api/internal/infra/meerkat"
	"watchdog/api/internal/logger"

	"gorm.io/gorm"
)

// fake address watcher recording subscribe/unsubscribe calls

type fakeWatcher struct {
	mu             sync.Mutex
	seq            int
	created        []string
	cancelled      []string
	live           []meerkat.Subscription
	subscribeErr   error
	unsubscribeErr error
	listErr        error
}

func (f *fakeWatcher) Subscribe(ctx context.Context, address string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subscribeErr != nil {
		return "", f.subscribeErr
	}
	f.seq++
	id := fmt.Sprintf("sub-%d", f.seq)
	f.created = append(f.created, id)
	return id, nil
}

func (f *fakeWatcher) Unsubscribe(ctx context.Context, subscriptionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.unsubscribeErr != nil {
		return f.unsubscribeErr
	}
	f.cancelled = append(f.cancelled, subscriptionID)
	return nil
}

func (f *fakeWatcher) ListSubscriptions(ctx context.Context) ([]meerkat.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.live, nil
}

func (f *fakeWatcher) cancelCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cancelled)
}

func (f *fakeWatcher) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

// in-memory charities repo, wallet uniqueness enforced like the pg index

type fakeCharitiesRepo struct {
	mu        sync.Mutex
	byWallet  map[string]domain.Charities
	createErr error
	// simulate the window where the pre-check misses a row that the
	// insert then collides with
	hideFromFind bool
}

func newFakeCharitiesRepo() *fakeCharitiesRepo {
	return &fakeCharitiesRepo{byWallet: map[string]domain.Charities{}}
}

func (f *fakeCharitiesRepo) Create(tx *gorm.DB, charity *domain.Charities) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byWallet[charity.WalletAddress]; ok {
		return domain.ErrDuplicateWallet
	}
	f.byWallet[charity.WalletAddress] = *charity
	return nil
}

func (f *fakeCharitiesRepo) FindByWalletAddress(tx *gorm.DB, walletAddress string) (*domain.Charities, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.hideFromFind {
		return nil, gorm.ErrRecordNotFound
	}
	if charity, ok := f.byWallet[walletAddress]; ok {
		return &charity, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCharitiesRepo) FindByCharityID(tx *gorm.DB, charityID string) (*domain.Charities, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, charity := range f.byWallet {
		if charity.CharityID == charityID {
			return &charity, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCharitiesRepo) FindBySubscriptionID(tx *gorm.DB, subscriptionID string) (*domain.Charities, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, charity := range f.byWallet {
		if charity.SubscriptionID == subscriptionID {
			return &charity, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCharitiesRepo) List(tx *gorm.DB) ([]domain.Charities, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var charities []domain.Charities
	for _, charity := range f.byWallet {
		charities = append(charities, charity)
	}
	return charities, nil
}

type fakeOrphans struct {
	mu       sync.Mutex
	recorded []domain.Orphans
}

func (f *fakeOrphans) Record(tx *gorm.DB, subscriptionID, walletAddress, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded = append(f.recorded, domain.Orphans{SubscriptionID: subscriptionID, WalletAddress: walletAddress, Reason: reason})
	return nil
}

func (f *fakeOrphans) StartSweep() {}

func testLogger() logger.Logger {
	return logger.Init(&config.Config{})
}

func TestOnboard(t *testing.T) {
	watcher := &fakeWatcher{}
	repo := newFakeCharitiesRepo()
	orphans := &fakeOrphans{}

	s := NewCharitiesService(nil, repo, orphans, watcher, testLogger())

	charity, err := s.Onboard(context.Background(), "Sea Shepherd", "ocean conservation", "0xABC")
	if err != nil {
		t.Fatal(err)
	}
	if charity.CharityID == "" {
		t.Fatal("empty charity id")
	}
	if charity.SubscriptionID != "sub-1" {
		t.Fatalf("subscription id: got %s, want sub-1", charity.SubscriptionID)
	}

	if watcher.createCount() != 1 {
		t.Fatalf("subscribe calls: got %d, want 1", watcher.createCount())
	}
	if watcher.cancelCount() != 0 {
		t.Fatalf("unsubscribe calls: got %d, want 0", watcher.cancelCount())
	}

	charities, _ := s.List(nil)
	if len(charities) != 1 {
		t.Fatalf("charities: got %d, want 1", len(charities))
	}
	if charities[0].WalletAddress != "0xABC" || charities[0].SubscriptionID != "sub-1" {
		t.Fatalf("unexpected row: %+v", charities[0])
	}
}

func TestOnboardSubscribeFails(t *testing.T) {
	watcher := &fakeWatcher{subscribeErr: fmt.Errorf("connection refused")}
	repo := newFakeCharitiesRepo()

	s := NewCharitiesService(nil, repo, &fakeOrphans{}, watcher, testLogger())

	_, err := s.Onboard(context.Background(), "a", "b", "0xABC")
	if !errors.Is(err, domain.ErrSubscriptionFailed) {
		t.Fatalf("got %v, want ErrSubscriptionFailed", err)
	}
	if len(repo.byWallet) != 0 {
		t.Fatal("no store write must happen when the subscription fails")
	}
}

func TestOnboardDuplicateWalletPrecheck(t *testing.T) {
	watcher := &fakeWatcher{}
	repo := newFakeCharitiesRepo()
	repo.byWallet["0xABC"] = domain.Charities{CharityID: "c-1", WalletAddress: "0xABC", SubscriptionID: "sub-0"}

	s := NewCharitiesService(nil, repo, &fakeOrphans{}, watcher, testLogger())

	_, err := s.Onboard(context.Background(), "a", "b", "0xABC")
	if !errors.Is(err, domain.ErrDuplicateWallet) {
		t.Fatalf("got %v, want ErrDuplicateWallet", err)
	}
	if watcher.createCount() != 0 {
		t.Fatal("pre-check must avoid creating a subscription for a known wallet")
	}
}

// the pre-check misses, the insert collides: the losing attempt must cancel
// the subscription it created
func TestOnboardDuplicateWalletRace(t *testing.T) {
	watcher := &fakeWatcher{}
	repo := newFakeCharitiesRepo()
	repo.byWallet["0xABC"] = domain.Charities{CharityID: "c-1", WalletAddress: "0xABC", SubscriptionID: "sub-0"}
	repo.hideFromFind = true

	orphans := &fakeOrphans{}
	s := NewCharitiesService(nil, repo, orphans, watcher, testLogger())

	_, err := s.Onboard(context.Background(), "a", "b", "0xABC")
	if !errors.Is(err, domain.ErrDuplicateWallet) {
		t.Fatalf("got %v, want ErrDuplicateWallet", err)
	}

	if watcher.createCount() != 1 {
		t.Fatalf("subscribe calls: got %d, want 1", watcher.createCount())
	}
	if watcher.cancelCount() != 1 {
		t.Fatalf("unsubscribe calls: got %d, want 1", watcher.cancelCount())
	}
	if watcher.cancelled[0] != watcher.created[0] {
		t.Fatalf("cancelled %s, want %s", watcher.cancelled[0], watcher.created[0])
	}
	if len(orphans.recorded) != 0 {
		t.Fatal("successful compensation must not record an orphan")
	}
}

func TestOnboardPersistenceFailed(t *testing.T) {
	watcher := &fakeWatcher{}
	repo := newFakeCharitiesRepo()
	repo.createErr = fmt.Errorf("store unavailable")

	orphans := &fakeOrphans{}
	s := NewCharitiesService(nil, repo, orphans, watcher, testLogger())

	_, err := s.Onboard(context.Background(), "a", "b", "0xABC")
	if !errors.Is(err, domain.ErrPersistenceFailed) {
		t.Fatalf("got %v, want ErrPersistenceFailed", err)
	}
	if watcher.cancelCount() != 1 {
		t.Fatalf("unsubscribe calls: got %d, want 1", watcher.cancelCount())
	}
	if len(orphans.recorded) != 0 {
		t.Fatal("successful compensation must not record an orphan")
	}
}

// compensation itself fails: the orphan must be surfaced, the original error kept
func TestOnboardCompensationFails(t *testing.T) {
	watcher := &fakeWatcher{unsubscribeErr: fmt.Errorf("meerkat down")}
	repo := newFakeCharitiesRepo()
	repo.createErr = fmt.Errorf("store unavailable")

	orphans := &fakeOrphans{}
	s := NewCharitiesService(nil, repo, orphans, watcher, testLogger())

	_, err := s.Onboard(context.Background(), "a", "b", "0xABC")
	if !errors.Is(err, domain.ErrPersistenceFailed) {
		t.Fatalf("got %v, want ErrPersistenceFailed", err)
	}

	if len(orphans.recorded) != 1 {
		t.Fatalf("orphans recorded: got %d, want 1", len(orphans.recorded))
	}
	if orphans.recorded[0].Reason != domain.ORPHAN_REASON_CANCEL_FAILED {
		t.Fatalf("orphan reason: got %s", orphans.recorded[0].Reason)
	}
	if orphans.recorded[0].SubscriptionID != "sub-1" {
		t.Fatalf("orphan subscription: got %s, want sub-1", orphans.recorded[0].SubscriptionID)
	}
}

// two concurrent onboardings for the same wallet: exactly one wins, the
// loser compensates, no orphaned subscription remains
func TestOnboardConcurrentSameWallet(t *testing.T) {
	watcher := &fakeWatcher{}
	repo := newFakeCharitiesRepo()
	repo.hideFromFind = true // both pass the pre-check

	s := NewCharitiesService(nil, repo, &fakeOrphans{}, watcher, testLogger())

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = s.Onboard(context.Background(), "a", "b", "0xABC")
		}(i)
	}
	wg.Wait()

	var wins, duplicates int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domain.ErrDuplicateWallet):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if wins != 1 || duplicates != 1 {
		t.Fatalf("wins=%d duplicates=%d, want 1/1", wins, duplicates)
	}
	if watcher.createCount()-watcher.cancelCount() != 1 {
		t.Fatalf("leaked subscriptions: created=%d cancelled=%d", watcher.createCount(), watcher.cancelCount())
	}
}
