package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/pkg/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type adRepoFake struct {
	ads      map[primitive.ObjectID]*models.Advertisement
	approved map[primitive.ObjectID]time.Time
	rejected map[primitive.ObjectID]bool
	expired  int64
}

func newAdRepoFake() *adRepoFake {
	return &adRepoFake{
		ads:      map[primitive.ObjectID]*models.Advertisement{},
		approved: map[primitive.ObjectID]time.Time{},
		rejected: map[primitive.ObjectID]bool{},
	}
}

func (f *adRepoFake) Create(ctx context.Context, ad *models.Advertisement) error {
	ad.ID = primitive.NewObjectID()
	f.ads[ad.ID] = ad
	return nil
}
func (f *adRepoFake) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Advertisement, error) {
	ad, ok := f.ads[id]
	if !ok {
		return nil, fmt.Errorf("advertisement not found")
	}
	return ad, nil
}
func (f *adRepoFake) ListByStatus(ctx context.Context, status models.AdStatus, skip, limit int64) ([]*models.Advertisement, int64, error) {
	var out []*models.Advertisement
	for _, ad := range f.ads {
		if ad.Status == status {
			out = append(out, ad)
		}
	}
	return out, int64(len(out)), nil
}
func (f *adRepoFake) ListByBusiness(ctx context.Context, id primitive.ObjectID, skip, limit int64) ([]*models.Advertisement, int64, error) {
	return nil, 0, nil
}
func (f *adRepoFake) ListActive(ctx context.Context) ([]*models.Advertisement, error) {
	return nil, nil
}
func (f *adRepoFake) Approve(ctx context.Context, id primitive.ObjectID, expireAt time.Time) error {
	ad, ok := f.ads[id]
	if !ok || ad.Status != models.AdStatusPending {
		return fmt.Errorf("advertisement is not pending")
	}
	ad.Status = models.AdStatusLive
	ad.IsActive = true
	ad.ExpireAt = &expireAt
	f.approved[id] = expireAt
	return nil
}
func (f *adRepoFake) Reject(ctx context.Context, id primitive.ObjectID) error {
	ad, ok := f.ads[id]
	if !ok || ad.Status != models.AdStatusPending {
		return fmt.Errorf("advertisement is not pending")
	}
	ad.Status = models.AdStatusRejected
	f.rejected[id] = true
	return nil
}
func (f *adRepoFake) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	return f.expired, nil
}

type planRepoFake struct {
	plans map[primitive.ObjectID]*models.AdPlan
}

func (f *planRepoFake) Create(ctx context.Context, plan *models.AdPlan) error { return nil }
func (f *planRepoFake) GetByID(ctx context.Context, id primitive.ObjectID) (*models.AdPlan, error) {
	plan, ok := f.plans[id]
	if !ok {
		return nil, fmt.Errorf("ad plan not found")
	}
	return plan, nil
}
func (f *planRepoFake) ListActive(ctx context.Context) ([]*models.AdPlan, error) {
	var out []*models.AdPlan
	for _, p := range f.plans {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

type businessRepoFake struct {
	byOwner map[primitive.ObjectID]*models.Business
}

func (f *businessRepoFake) Create(ctx context.Context, b *models.Business) error { return nil }
func (f *businessRepoFake) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Business, error) {
	return nil, fmt.Errorf("business not found")
}
func (f *businessRepoFake) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Business, error) {
	b, ok := f.byOwner[ownerID]
	if !ok {
		return nil, fmt.Errorf("business not found")
	}
	return b, nil
}
func (f *businessRepoFake) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}
func (f *businessRepoFake) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	return nil
}
func (f *businessRepoFake) FindNearby(ctx context.Context, query *interfaces.NearbyQuery) ([]*models.BusinessResult, error) {
	return nil, nil
}

type notifierFake struct {
	sent []models.NotificationType
}

func (f *notifierFake) Notify(ctx context.Context, userID primitive.ObjectID, typ models.NotificationType, title, body string, data map[string]string) {
	f.sent = append(f.sent, typ)
}
func (f *notifierFake) ListByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]*models.Notification, int64, error) {
	return nil, 0, nil
}
func (f *notifierFake) MarkRead(ctx context.Context, id primitive.ObjectID) error { return nil }

type paymentsFake struct {
	verified map[string]bool
	intents  []*payment.PaymentRequest
}

func (f *paymentsFake) CreatePaymentIntent(ctx context.Context, req *payment.PaymentRequest) (*payment.PaymentResponse, error) {
	f.intents = append(f.intents, req)
	return &payment.PaymentResponse{PaymentID: "pi_test", Status: "requires_payment_method", Amount: req.Amount, Currency: req.Currency}, nil
}
func (f *paymentsFake) VerifyPayment(ctx context.Context, paymentID string) (bool, error) {
	return f.verified[paymentID], nil
}

type adFixture struct {
	svc      AdvertisementService
	adRepo   *adRepoFake
	planRepo *planRepoFake
	notifier *notifierFake
	payments *paymentsFake
	clock    fixedClock
	ownerID  primitive.ObjectID
	planID   primitive.ObjectID
}

func newAdFixture(t *testing.T) *adFixture {
	t.Helper()

	ownerID := primitive.NewObjectID()
	planID := primitive.NewObjectID()
	business := &models.Business{
		ID:      primitive.NewObjectID(),
		OwnerID: ownerID,
	}

	adRepo := newAdRepoFake()
	planRepo := &planRepoFake{plans: map[primitive.ObjectID]*models.AdPlan{
		planID: {ID: planID, Name: "Weekly", DurationDays: 7, Price: 9.99, Currency: "usd", IsActive: true},
	}}
	businessRepo := &businessRepoFake{byOwner: map[primitive.ObjectID]*models.Business{ownerID: business}}
	notifier := &notifierFake{}
	payments := &paymentsFake{verified: map[string]bool{"pi_paid": true}}
	clock := fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	svc := NewAdvertisementService(adRepo, planRepo, businessRepo, notifier, payments, clock, newTestLogger(t))

	return &adFixture{
		svc:      svc,
		adRepo:   adRepo,
		planRepo: planRepo,
		notifier: notifier,
		payments: payments,
		clock:    clock,
		ownerID:  ownerID,
		planID:   planID,
	}
}

func (f *adFixture) submission(paymentID string) *AdSubmission {
	return &AdSubmission{
		Title:     "Grand opening",
		ImageKey:  "ads/opening.jpg",
		Latitude:  10.0,
		Longitude: 76.0,
		RadiusKM:  5,
		PlanID:    f.planID,
		PaymentID: paymentID,
	}
}

func TestSubmitCreatesPendingAd(t *testing.T) {
	f := newAdFixture(t)

	ad, err := f.svc.Submit(context.Background(), f.ownerID, f.submission("pi_paid"))
	require.NoError(t, err)

	assert.Equal(t, models.AdStatusPending, ad.Status)
	assert.False(t, ad.IsActive)
	assert.Nil(t, ad.ExpireAt)
	require.NotNil(t, ad.Location)
	assert.InDelta(t, 10.0, ad.Location.Latitude(), 1e-9)
	assert.InDelta(t, 76.0, ad.Location.Longitude(), 1e-9)
	assert.Greater(t, ad.RadiusInRadians, 0.0)
}

func TestSubmitRejectsUnpaidSubmission(t *testing.T) {
	f := newAdFixture(t)

	_, err := f.svc.Submit(context.Background(), f.ownerID, f.submission("pi_unpaid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment")
}

func TestSubmitRequiresBusinessProfile(t *testing.T) {
	f := newAdFixture(t)

	_, err := f.svc.Submit(context.Background(), primitive.NewObjectID(), f.submission("pi_paid"))
	require.Error(t, err)
}

func TestSubmitAdminGoesLiveImmediately(t *testing.T) {
	f := newAdFixture(t)

	ad, err := f.svc.SubmitAdmin(context.Background(), primitive.NewObjectID(), "Platform sale", "ads/sale.jpg")
	require.NoError(t, err)

	assert.Equal(t, models.AdStatusLive, ad.Status)
	assert.True(t, ad.IsActive)
	assert.True(t, ad.IsPostedByAdmin)
	assert.Nil(t, ad.Location)
	assert.Nil(t, ad.ExpireAt)
}

func TestApproveStampsDeadlineFromPlan(t *testing.T) {
	f := newAdFixture(t)

	ad, err := f.svc.Submit(context.Background(), f.ownerID, f.submission("pi_paid"))
	require.NoError(t, err)

	require.NoError(t, f.svc.Approve(context.Background(), ad.ID))

	want := f.clock.now.Add(7 * 24 * time.Hour)
	assert.Equal(t, want, f.adRepo.approved[ad.ID])
	assert.Equal(t, models.AdStatusLive, ad.Status)
	assert.Equal(t, []models.NotificationType{models.NotificationAdApproved}, f.notifier.sent)
}

func TestApproveTwiceFails(t *testing.T) {
	f := newAdFixture(t)

	ad, err := f.svc.Submit(context.Background(), f.ownerID, f.submission("pi_paid"))
	require.NoError(t, err)

	require.NoError(t, f.svc.Approve(context.Background(), ad.ID))
	assert.Error(t, f.svc.Approve(context.Background(), ad.ID))
}

func TestRejectNotifiesWithReason(t *testing.T) {
	f := newAdFixture(t)

	ad, err := f.svc.Submit(context.Background(), f.ownerID, f.submission("pi_paid"))
	require.NoError(t, err)

	require.NoError(t, f.svc.Reject(context.Background(), ad.ID, "image violates guidelines"))

	assert.Equal(t, models.AdStatusRejected, ad.Status)
	assert.Equal(t, []models.NotificationType{models.NotificationAdRejected}, f.notifier.sent)
}

func TestResubmitCreatesNewDocument(t *testing.T) {
	f := newAdFixture(t)

	old, err := f.svc.Submit(context.Background(), f.ownerID, f.submission("pi_paid"))
	require.NoError(t, err)
	require.NoError(t, f.svc.Reject(context.Background(), old.ID, ""))

	fresh, err := f.svc.Resubmit(context.Background(), f.ownerID, old.ID, "pi_paid")
	require.NoError(t, err)

	assert.NotEqual(t, old.ID, fresh.ID)
	assert.Equal(t, models.AdStatusPending, fresh.Status)
	assert.Equal(t, old.Title, fresh.Title)
	assert.Equal(t, old.RadiusKM, fresh.RadiusKM)

	// The rejected document keeps its terminal status.
	assert.Equal(t, models.AdStatusRejected, f.adRepo.ads[old.ID].Status)
}

func TestResubmitRequiresTerminalStatus(t *testing.T) {
	f := newAdFixture(t)

	pending, err := f.svc.Submit(context.Background(), f.ownerID, f.submission("pi_paid"))
	require.NoError(t, err)

	_, err = f.svc.Resubmit(context.Background(), f.ownerID, pending.ID, "pi_paid")
	require.Error(t, err)
}

func TestResubmitRejectsForeignAd(t *testing.T) {
	f := newAdFixture(t)

	ad, err := f.svc.Submit(context.Background(), f.ownerID, f.submission("pi_paid"))
	require.NoError(t, err)
	require.NoError(t, f.svc.Reject(context.Background(), ad.ID, ""))

	_, err = f.svc.Resubmit(context.Background(), primitive.NewObjectID(), ad.ID, "pi_paid")
	require.Error(t, err)
}

func TestCheckoutCarriesPlanMetadata(t *testing.T) {
	f := newAdFixture(t)

	resp, err := f.svc.Checkout(context.Background(), f.ownerID, f.planID)
	require.NoError(t, err)

	assert.Equal(t, "pi_test", resp.PaymentID)
	require.Len(t, f.payments.intents, 1)
	intent := f.payments.intents[0]
	assert.Equal(t, 9.99, intent.Amount)
	assert.Equal(t, "usd", intent.Currency)
	assert.Equal(t, f.planID.Hex(), intent.Metadata["plan_id"])
	assert.Equal(t, f.ownerID.Hex(), intent.Metadata["owner_id"])
}

func TestCheckoutRejectsInactivePlan(t *testing.T) {
	f := newAdFixture(t)
	f.planRepo.plans[f.planID].IsActive = false

	_, err := f.svc.Checkout(context.Background(), f.ownerID, f.planID)
	require.Error(t, err)
}
