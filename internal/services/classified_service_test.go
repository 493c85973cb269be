package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/internal/utils"
	"nearmarket/internal/validators"
	"nearmarket/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type classifiedRepoFake struct {
	listings map[primitive.ObjectID]*models.ClassifiedListing
	deleted  []primitive.ObjectID
}

func newClassifiedRepoFake() *classifiedRepoFake {
	return &classifiedRepoFake{listings: map[primitive.ObjectID]*models.ClassifiedListing{}}
}

func (f *classifiedRepoFake) Create(ctx context.Context, listing *models.ClassifiedListing) error {
	listing.ID = primitive.NewObjectID()
	f.listings[listing.ID] = listing
	return nil
}
func (f *classifiedRepoFake) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ClassifiedListing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return nil, fmt.Errorf("listing not found")
	}
	return listing, nil
}
func (f *classifiedRepoFake) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, skip, limit int64) ([]*models.ClassifiedListing, int64, error) {
	return nil, 0, nil
}
func (f *classifiedRepoFake) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if title, ok := updates["title"].(string); ok {
		f.listings[id].Title = title
	}
	return nil
}
func (f *classifiedRepoFake) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.listings, id)
	f.deleted = append(f.deleted, id)
	return nil
}
func (f *classifiedRepoFake) FindNearby(ctx context.Context, query *interfaces.NearbyQuery) ([]*models.ClassifiedResult, error) {
	return nil, nil
}
func (f *classifiedRepoFake) FindExpired(ctx context.Context, now time.Time) ([]*models.ClassifiedListing, error) {
	var out []*models.ClassifiedListing
	for _, l := range f.listings {
		if l.ExpireAt.Before(now) {
			out = append(out, l)
		}
	}
	return out, nil
}
func (f *classifiedRepoFake) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	var count int64
	for _, id := range ids {
		if _, ok := f.listings[id]; ok {
			delete(f.listings, id)
			f.deleted = append(f.deleted, id)
			count++
		}
	}
	return count, nil
}

type storageFake struct {
	mu      sync.Mutex
	deleted []string
	failOn  map[string]bool
}

func (f *storageFake) Upload(ctx context.Context, req *storage.UploadRequest) (*storage.UploadResponse, error) {
	return &storage.UploadResponse{Key: req.Key}, nil
}
func (f *storageFake) Download(ctx context.Context, key string) (*storage.DownloadResponse, error) {
	return nil, fmt.Errorf("not found")
}
func (f *storageFake) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn[key] {
		return fmt.Errorf("storage unavailable")
	}
	f.deleted = append(f.deleted, key)
	return nil
}
func (f *storageFake) GetURL(ctx context.Context, key string, exp time.Duration) (string, error) {
	return "https://cdn.test/" + key, nil
}
func (f *storageFake) FileExists(ctx context.Context, key string) (bool, error) { return false, nil }

func newClassifiedFixture(t *testing.T) (ClassifiedService, *classifiedRepoFake, *storageFake, fixedClock) {
	t.Helper()
	repo := newClassifiedRepoFake()
	store := &storageFake{}
	clock := fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewClassifiedService(repo, store, clock, newTestLogger(t))
	return svc, repo, store, clock
}

func classifiedCreateRequest() *validators.ClassifiedCreateRequest {
	return &validators.ClassifiedCreateRequest{
		Title:     "Used bicycle",
		Price:     45,
		Latitude:  "10.0",
		Longitude: "76.0",
		ImageKeys: []string{"classifieds/bike1.jpg", "classifieds/bike2.jpg"},
	}
}

func TestClassifiedCreateStampsExpiry(t *testing.T) {
	svc, _, _, clock := newClassifiedFixture(t)
	ownerID := primitive.NewObjectID()

	listing, err := svc.Create(context.Background(), ownerID, classifiedCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, clock.now.Add(utils.ClassifiedListingTTL), listing.ExpireAt)
	require.NotNil(t, listing.Location)
	assert.InDelta(t, 10.0, listing.Location.Latitude(), 1e-9)
}

func TestClassifiedCreateRejectsBadCoordinates(t *testing.T) {
	svc, _, _, _ := newClassifiedFixture(t)

	req := classifiedCreateRequest()
	req.Latitude = "95.0"
	_, err := svc.Create(context.Background(), primitive.NewObjectID(), req)
	require.Error(t, err)
}

func TestClassifiedUpdateEnforcesOwnership(t *testing.T) {
	svc, _, _, _ := newClassifiedFixture(t)
	ownerID := primitive.NewObjectID()

	listing, err := svc.Create(context.Background(), ownerID, classifiedCreateRequest())
	require.NoError(t, err)

	err = svc.Update(context.Background(), primitive.NewObjectID(), listing.ID, &validators.ClassifiedUpdateRequest{Title: "New title"})
	require.Error(t, err)

	err = svc.Update(context.Background(), ownerID, listing.ID, &validators.ClassifiedUpdateRequest{Title: "New title"})
	require.NoError(t, err)
	assert.Equal(t, "New title", listing.Title)
}

func TestClassifiedDeleteRemovesImages(t *testing.T) {
	svc, repo, store, _ := newClassifiedFixture(t)
	ownerID := primitive.NewObjectID()

	listing, err := svc.Create(context.Background(), ownerID, classifiedCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), ownerID, listing.ID))

	assert.ElementsMatch(t, []string{"classifieds/bike1.jpg", "classifieds/bike2.jpg"}, store.deleted)
	assert.Contains(t, repo.deleted, listing.ID)
}

func TestCleanupExpiredPurgesOldListings(t *testing.T) {
	svc, repo, store, clock := newClassifiedFixture(t)
	ownerID := primitive.NewObjectID()

	listing, err := svc.Create(context.Background(), ownerID, classifiedCreateRequest())
	require.NoError(t, err)

	// Not yet due.
	require.NoError(t, svc.CleanupExpired(context.Background(), clock.now.Add(24*time.Hour)))
	assert.Empty(t, repo.deleted)

	// Past the deadline.
	after := clock.now.Add(utils.ClassifiedListingTTL + time.Hour)
	require.NoError(t, svc.CleanupExpired(context.Background(), after))
	assert.Contains(t, repo.deleted, listing.ID)
	assert.Len(t, store.deleted, 2)

	// Second run is a no-op.
	require.NoError(t, svc.CleanupExpired(context.Background(), after))
	assert.Len(t, repo.deleted, 1)
}

func TestCleanupExpiredSurvivesStorageFailure(t *testing.T) {
	svc, repo, store, clock := newClassifiedFixture(t)
	store.failOn = map[string]bool{"classifieds/bike1.jpg": true}
	ownerID := primitive.NewObjectID()

	listing, err := svc.Create(context.Background(), ownerID, classifiedCreateRequest())
	require.NoError(t, err)

	after := clock.now.Add(utils.ClassifiedListingTTL + time.Hour)
	require.NoError(t, svc.CleanupExpired(context.Background(), after))

	// The listing still goes away even though one image delete failed.
	assert.Contains(t, repo.deleted, listing.ID)
	assert.Equal(t, []string{"classifieds/bike2.jpg"}, store.deleted)
}
