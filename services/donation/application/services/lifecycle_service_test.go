package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/config"
	"github.com/Lslreddy/surplus-to-success/pkg/logger"
	donationdomain "github.com/Lslreddy/surplus-to-success/services/donation/domain"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/models"
	"github.com/Lslreddy/surplus-to-success/services/donation/domain/repositories"
)

// fakeStore implements DonationRepository and ClaimRepository in memory with
// the same arbitration semantics as the Postgres implementation: every
// lifecycle mutation checks its precondition under one lock, so concurrent
// callers resolve to exactly one winner.
type fakeStore struct {
	mu        sync.Mutex
	donations map[uuid.UUID]*models.Donation
	claims    map[uuid.UUID]*models.Claim // keyed by donation ID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		donations: make(map[uuid.UUID]*models.Donation),
		claims:    make(map[uuid.UUID]*models.Claim),
	}
}

func (f *fakeStore) Create(_ context.Context, d *models.Donation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *d
	f.donations[d.ID] = &cp
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*models.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.donations[id]
	if !ok {
		return nil, donationdomain.ErrDonationNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeStore) ListAvailable(_ context.Context, now time.Time, _ repositories.QueryOpts) ([]*models.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Donation
	for _, d := range f.donations {
		if d.Status == models.DonationAvailable && d.ExpiryTime.After(now) {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByDonor(_ context.Context, donorID uuid.UUID, _ repositories.QueryOpts) ([]*models.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Donation
	for _, d := range f.donations {
		if d.DonorID == donorID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByStatus(_ context.Context, status models.DonationStatus, _ repositories.QueryOpts) ([]*models.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Donation
	for _, d := range f.donations {
		if d.Status == status {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStore) ExpireBefore(_ context.Context, now time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, d := range f.donations {
		sweepable := d.Status == models.DonationAvailable || d.Status == models.DonationClaimed
		if sweepable && !d.ExpiryTime.After(now) {
			d.Status = models.DonationExpired
			d.UpdatedAt = now
			if c, ok := f.claims[d.ID]; ok && c.Status == models.ClaimPending {
				c.Status = models.ClaimCancelled
			}
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) ClaimDonation(_ context.Context, claim *models.Claim) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.donations[claim.DonationID]
	if !ok {
		return donationdomain.ErrDonationNotFound
	}
	if existing, ok := f.claims[claim.DonationID]; ok && existing.Status.Active() && existing.ClaimerID == claim.ClaimerID {
		return donationdomain.ErrDuplicateClaim
	}
	if d.Status != models.DonationAvailable {
		return donationdomain.ErrDonationConflict
	}
	cp := *claim
	f.claims[claim.DonationID] = &cp
	d.Status = models.DonationClaimed
	return nil
}

func (f *fakeStore) AttachVolunteer(_ context.Context, donationID, volunteerID uuid.UUID, pickupAt time.Time) (*models.Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.claims[donationID]
	if !ok || c.Status != models.ClaimPending || c.VolunteerID != nil {
		return nil, donationdomain.ErrDonationConflict
	}
	d := f.donations[donationID]
	if d == nil || d.Status != models.DonationClaimed {
		return nil, donationdomain.ErrDonationConflict
	}
	v := volunteerID
	t := pickupAt
	c.VolunteerID = &v
	c.Status = models.ClaimPickedUp
	c.PickupTime = &t
	d.Status = models.DonationInTransit
	cp := *c
	return &cp, nil
}

func (f *fakeStore) CompleteDelivery(_ context.Context, donationID, volunteerID uuid.UUID, deliveredAt time.Time) (*models.Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.claims[donationID]
	if !ok || c.Status != models.ClaimPickedUp || c.VolunteerID == nil || *c.VolunteerID != volunteerID {
		return nil, donationdomain.ErrDonationConflict
	}
	d := f.donations[donationID]
	if d == nil || d.Status != models.DonationInTransit {
		return nil, donationdomain.ErrDonationConflict
	}
	t := deliveredAt
	c.Status = models.ClaimDelivered
	c.DeliveryTime = &t
	d.Status = models.DonationDelivered
	cp := *c
	return &cp, nil
}

func (f *fakeStore) GetActiveByDonation(_ context.Context, donationID uuid.UUID) (*models.Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.claims[donationID]
	if !ok || !c.Status.Active() {
		return nil, donationdomain.ErrClaimNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStore) ListByClaimer(_ context.Context, claimerID uuid.UUID, _ repositories.QueryOpts) ([]*models.Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Claim
	for _, c := range f.claims {
		if c.ClaimerID == claimerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByVolunteer(_ context.Context, volunteerID uuid.UUID, _ repositories.QueryOpts) ([]*models.Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Claim
	for _, c := range f.claims {
		if c.VolunteerID != nil && *c.VolunteerID == volunteerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCategories struct {
	known map[uuid.UUID]bool
}

func (f *fakeCategories) ListAll(_ context.Context) ([]*models.Category, error) {
	var out []*models.Category
	for id := range f.known {
		out = append(out, &models.Category{ID: id, Name: "category"})
	}
	return out, nil
}

func (f *fakeCategories) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

type fakeScheduler struct {
	mu    sync.Mutex
	calls []uuid.UUID
}

func (f *fakeScheduler) ScheduleEscalation(_ context.Context, donationID uuid.UUID, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, donationID)
	return nil
}

func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

type fixture struct {
	store      *fakeStore
	categories *fakeCategories
	scheduler  *fakeScheduler
	svc        *LifecycleService
	categoryID uuid.UUID
}

func newFixture() *fixture {
	store := newFakeStore()
	categoryID := uuid.New()
	categories := &fakeCategories{known: map[uuid.UUID]bool{categoryID: true}}
	scheduler := &fakeScheduler{}
	svc := NewLifecycleService(store, store, categories, nil, scheduler, newTestLogger())
	return &fixture{
		store:      store,
		categories: categories,
		scheduler:  scheduler,
		svc:        svc,
		categoryID: categoryID,
	}
}

func (fx *fixture) input() models.NewDonationInput {
	return models.NewDonationInput{
		Title:         "Surplus sandwich trays",
		CategoryID:    fx.categoryID,
		Quantity:      12,
		Unit:          "trays",
		Freshness:     models.FreshnessWarm,
		ExpiryTime:    time.Now().Add(4 * time.Hour),
		PickupAddress: "42 Market St",
	}
}

func donor() auth.Actor     { return auth.Actor{ID: uuid.New(), Role: auth.RoleDonor} }
func receiver() auth.Actor  { return auth.Actor{ID: uuid.New(), Role: auth.RoleNGO} }
func volunteer() auth.Actor { return auth.Actor{ID: uuid.New(), Role: auth.RoleVolunteer} }

func TestPostDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("donor posts a valid donation", func(t *testing.T) {
		fx := newFixture()
		d, err := fx.svc.PostDonation(ctx, donor(), fx.input())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Status != models.DonationAvailable {
			t.Fatalf("expected available, got %s", d.Status)
		}
		if _, err := fx.store.GetByID(ctx, d.ID); err != nil {
			t.Fatalf("donation must be persisted: %v", err)
		}
	})

	t.Run("non-donor roles are rejected", func(t *testing.T) {
		fx := newFixture()
		for _, actor := range []auth.Actor{receiver(), volunteer(), {ID: uuid.New(), Role: auth.RoleAdmin}} {
			_, err := fx.svc.PostDonation(ctx, actor, fx.input())
			if !errors.Is(err, donationdomain.ErrNotAuthorized) {
				t.Fatalf("role %s: expected ErrNotAuthorized, got %v", actor.Role, err)
			}
		}
		if len(fx.store.donations) != 0 {
			t.Fatal("rejected posts must not persist anything")
		}
	})

	t.Run("validation failure persists nothing", func(t *testing.T) {
		fx := newFixture()
		in := fx.input()
		in.Quantity = 0
		if _, err := fx.svc.PostDonation(ctx, donor(), in); !errors.Is(err, donationdomain.ErrInvalidDonation) {
			t.Fatalf("expected ErrInvalidDonation, got %v", err)
		}

		in = fx.input()
		in.ExpiryTime = time.Now().Add(-time.Hour)
		if _, err := fx.svc.PostDonation(ctx, donor(), in); !errors.Is(err, donationdomain.ErrInvalidDonation) {
			t.Fatalf("expected ErrInvalidDonation for past expiry, got %v", err)
		}

		if len(fx.store.donations) != 0 {
			t.Fatal("invalid donations must not be persisted")
		}
	})

	t.Run("nonexistent category is a validation failure", func(t *testing.T) {
		fx := newFixture()
		in := fx.input()
		in.CategoryID = uuid.New()
		_, err := fx.svc.PostDonation(ctx, donor(), in)
		if !errors.Is(err, donationdomain.ErrInvalidDonation) {
			t.Fatalf("expected ErrInvalidDonation, got %v", err)
		}
	})
}

func TestClaimDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("receiver claims an available donation", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		rcv := receiver()

		claim, err := fx.svc.ClaimDonation(ctx, rcv, d.ID, "after 5pm")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claim.Status != models.ClaimPending {
			t.Fatalf("expected pending claim, got %s", claim.Status)
		}

		got, _ := fx.store.GetByID(ctx, d.ID)
		if got.Status != models.DonationClaimed {
			t.Fatalf("donation must be claimed, got %s", got.Status)
		}
	})

	t.Run("non-receiver roles are rejected", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		_, err := fx.svc.ClaimDonation(ctx, volunteer(), d.ID, "")
		if !errors.Is(err, donationdomain.ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("second receiver loses the race", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())

		if _, err := fx.svc.ClaimDonation(ctx, receiver(), d.ID, ""); err != nil {
			t.Fatalf("first claim must win: %v", err)
		}
		_, err := fx.svc.ClaimDonation(ctx, receiver(), d.ID, "")
		if !errors.Is(err, donationdomain.ErrDonationConflict) {
			t.Fatalf("expected ErrDonationConflict, got %v", err)
		}
	})

	t.Run("same receiver claiming twice is a duplicate", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		rcv := receiver()

		if _, err := fx.svc.ClaimDonation(ctx, rcv, d.ID, ""); err != nil {
			t.Fatalf("first claim must win: %v", err)
		}
		_, err := fx.svc.ClaimDonation(ctx, rcv, d.ID, "")
		if !errors.Is(err, donationdomain.ErrDuplicateClaim) {
			t.Fatalf("expected ErrDuplicateClaim, got %v", err)
		}
	})

	t.Run("unknown donation", func(t *testing.T) {
		fx := newFixture()
		_, err := fx.svc.ClaimDonation(ctx, receiver(), uuid.New(), "")
		if !errors.Is(err, donationdomain.ErrDonationNotFound) {
			t.Fatalf("expected ErrDonationNotFound, got %v", err)
		}
	})

	t.Run("lapsed but unswept donation cannot be claimed", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())

		// Simulate the expiry timestamp passing before the sweep runs.
		fx.store.mu.Lock()
		fx.store.donations[d.ID].ExpiryTime = time.Now().Add(-time.Minute)
		fx.store.mu.Unlock()

		_, err := fx.svc.ClaimDonation(ctx, receiver(), d.ID, "")
		if !errors.Is(err, donationdomain.ErrDonationConflict) {
			t.Fatalf("expected ErrDonationConflict, got %v", err)
		}
	})

	t.Run("concurrent claims produce exactly one winner", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())

		const claimants = 16
		var wg sync.WaitGroup
		results := make(chan error, claimants)
		for i := 0; i < claimants; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := fx.svc.ClaimDonation(ctx, receiver(), d.ID, "")
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		winners, losers := 0, 0
		for err := range results {
			switch {
			case err == nil:
				winners++
			case errors.Is(err, donationdomain.ErrDonationConflict):
				losers++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if winners != 1 {
			t.Fatalf("expected exactly 1 winner, got %d", winners)
		}
		if losers != claimants-1 {
			t.Fatalf("expected %d losers, got %d", claimants-1, losers)
		}
	})
}

func TestVolunteerForDelivery(t *testing.T) {
	ctx := context.Background()

	t.Run("volunteer accepts a claimed donation", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		_, _ = fx.svc.ClaimDonation(ctx, receiver(), d.ID, "")
		vol := volunteer()

		claim, err := fx.svc.VolunteerForDelivery(ctx, vol, d.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claim.Status != models.ClaimPickedUp {
			t.Fatalf("expected picked-up, got %s", claim.Status)
		}
		if claim.VolunteerID == nil || *claim.VolunteerID != vol.ID {
			t.Fatal("volunteer must be attached")
		}
		if claim.PickupTime == nil {
			t.Fatal("pickup time must be stamped on accept")
		}

		got, _ := fx.store.GetByID(ctx, d.ID)
		if got.Status != models.DonationInTransit {
			t.Fatalf("donation must be in-transit, got %s", got.Status)
		}
		if len(fx.scheduler.calls) != 1 || fx.scheduler.calls[0] != d.ID {
			t.Fatal("escalation must be scheduled once for the donation")
		}
	})

	t.Run("second volunteer loses", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		_, _ = fx.svc.ClaimDonation(ctx, receiver(), d.ID, "")

		if _, err := fx.svc.VolunteerForDelivery(ctx, volunteer(), d.ID); err != nil {
			t.Fatalf("first volunteer must win: %v", err)
		}
		_, err := fx.svc.VolunteerForDelivery(ctx, volunteer(), d.ID)
		if !errors.Is(err, donationdomain.ErrDonationConflict) {
			t.Fatalf("expected ErrDonationConflict, got %v", err)
		}
	})

	t.Run("cannot volunteer before a claim exists", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		_, err := fx.svc.VolunteerForDelivery(ctx, volunteer(), d.ID)
		if !errors.Is(err, donationdomain.ErrDonationConflict) {
			t.Fatalf("expected ErrDonationConflict, got %v", err)
		}
	})

	t.Run("non-volunteer roles are rejected", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		_, err := fx.svc.VolunteerForDelivery(ctx, receiver(), d.ID)
		if !errors.Is(err, donationdomain.ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})
}

func TestMarkDelivered(t *testing.T) {
	ctx := context.Background()

	t.Run("attached volunteer completes the delivery", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		_, _ = fx.svc.ClaimDonation(ctx, receiver(), d.ID, "")
		vol := volunteer()
		_, _ = fx.svc.VolunteerForDelivery(ctx, vol, d.ID)

		claim, err := fx.svc.MarkDelivered(ctx, vol, d.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claim.Status != models.ClaimDelivered {
			t.Fatalf("expected delivered, got %s", claim.Status)
		}
		if claim.DeliveryTime == nil {
			t.Fatal("delivery time must be stamped")
		}

		got, _ := fx.store.GetByID(ctx, d.ID)
		if got.Status != models.DonationDelivered {
			t.Fatalf("donation must be delivered, got %s", got.Status)
		}
	})

	t.Run("a different volunteer is not authorized", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		_, _ = fx.svc.ClaimDonation(ctx, receiver(), d.ID, "")
		_, _ = fx.svc.VolunteerForDelivery(ctx, volunteer(), d.ID)

		_, err := fx.svc.MarkDelivered(ctx, volunteer(), d.ID)
		if !errors.Is(err, donationdomain.ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("cannot deliver before a volunteer attaches", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		_, _ = fx.svc.ClaimDonation(ctx, receiver(), d.ID, "")

		_, err := fx.svc.MarkDelivered(ctx, volunteer(), d.ID)
		if !errors.Is(err, donationdomain.ErrDonationConflict) {
			t.Fatalf("expected ErrDonationConflict, got %v", err)
		}
	})
}

func TestExpireDonations(t *testing.T) {
	ctx := context.Background()

	t.Run("sweep expires lapsed donations and cancels pending claims", func(t *testing.T) {
		fx := newFixture()
		open, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		claimed, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		another, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		_, _ = fx.svc.ClaimDonation(ctx, receiver(), claimed.ID, "")

		now := time.Now().Add(5 * time.Hour)
		n, err := fx.svc.ExpireDonations(ctx, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 3 {
			t.Fatalf("expected 3 expired, got %d", n)
		}

		for _, id := range []uuid.UUID{open.ID, claimed.ID, another.ID} {
			got, _ := fx.store.GetByID(ctx, id)
			if got.Status != models.DonationExpired {
				t.Fatalf("donation %s must be expired, got %s", id, got.Status)
			}
		}
		if c := fx.store.claims[claimed.ID]; c.Status != models.ClaimCancelled {
			t.Fatalf("pending claim must be cancelled, got %s", c.Status)
		}
	})

	t.Run("sweep is idempotent", func(t *testing.T) {
		fx := newFixture()
		_, _ = fx.svc.PostDonation(ctx, donor(), fx.input())

		now := time.Now().Add(5 * time.Hour)
		first, err := fx.svc.ExpireDonations(ctx, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != 1 {
			t.Fatalf("expected 1 expired, got %d", first)
		}

		second, err := fx.svc.ExpireDonations(ctx, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second != 0 {
			t.Fatalf("second sweep must expire nothing, got %d", second)
		}
	})

	t.Run("in-transit donations are never swept", func(t *testing.T) {
		fx := newFixture()
		d, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
		_, _ = fx.svc.ClaimDonation(ctx, receiver(), d.ID, "")
		_, _ = fx.svc.VolunteerForDelivery(ctx, volunteer(), d.ID)

		n, err := fx.svc.ExpireDonations(ctx, time.Now().Add(5*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Fatalf("in-transit donation must not expire, got %d", n)
		}
	})
}

func TestFullLifecycle(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()

	dnr, rcv, vol := donor(), receiver(), volunteer()

	d, err := fx.svc.PostDonation(ctx, dnr, fx.input())
	if err != nil {
		t.Fatalf("post: %v", err)
	}

	claim, err := fx.svc.ClaimDonation(ctx, rcv, d.ID, "loading dock entrance")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}

	picked, err := fx.svc.VolunteerForDelivery(ctx, vol, d.ID)
	if err != nil {
		t.Fatalf("volunteer: %v", err)
	}
	if picked.ID != claim.ID {
		t.Fatal("volunteer must attach to the receiver's claim")
	}

	done, err := fx.svc.MarkDelivered(ctx, vol, d.ID)
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if done.Status != models.ClaimDelivered {
		t.Fatalf("expected delivered claim, got %s", done.Status)
	}

	final, _ := fx.store.GetByID(ctx, d.ID)
	if final.Status != models.DonationDelivered {
		t.Fatalf("expected delivered donation, got %s", final.Status)
	}
	if !final.Status.Terminal() {
		t.Fatal("delivered must be terminal")
	}

	// Terminal state: nothing else can touch it.
	if _, err := fx.svc.ClaimDonation(ctx, receiver(), d.ID, ""); !errors.Is(err, donationdomain.ErrDonationConflict) {
		t.Fatalf("claim on delivered donation: expected conflict, got %v", err)
	}
	if n, _ := fx.svc.ExpireDonations(ctx, time.Now().Add(24*time.Hour)); n != 0 {
		t.Fatalf("delivered donation must not expire, got %d", n)
	}
}

func TestListAvailable_ExcludesLapsed(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()

	fresh, _ := fx.svc.PostDonation(ctx, donor(), fx.input())
	lapsed, _ := fx.svc.PostDonation(ctx, donor(), fx.input())

	fx.store.mu.Lock()
	fx.store.donations[lapsed.ID].ExpiryTime = time.Now().Add(-time.Minute)
	fx.store.mu.Unlock()

	out, err := fx.svc.ListAvailable(ctx, repositories.QueryOpts{Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != fresh.ID {
		t.Fatalf("expected only the fresh donation, got %d entries", len(out))
	}
}
