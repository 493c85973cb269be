package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: "stderr"})
	require.NoError(t, err)
	return log
}

type discoveryBusinessRepo struct {
	results   []*models.BusinessResult
	lastQuery *interfaces.NearbyQuery
}

func (f *discoveryBusinessRepo) Create(ctx context.Context, b *models.Business) error { return nil }
func (f *discoveryBusinessRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Business, error) {
	return nil, nil
}
func (f *discoveryBusinessRepo) GetByOwner(ctx context.Context, id primitive.ObjectID) (*models.Business, error) {
	return nil, nil
}
func (f *discoveryBusinessRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}
func (f *discoveryBusinessRepo) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	return nil
}
func (f *discoveryBusinessRepo) FindNearby(ctx context.Context, query *interfaces.NearbyQuery) ([]*models.BusinessResult, error) {
	f.lastQuery = query
	return f.results, nil
}

type discoveryAdRepo struct {
	active    []*models.Advertisement
	listCalls int
}

func (f *discoveryAdRepo) Create(ctx context.Context, ad *models.Advertisement) error { return nil }
func (f *discoveryAdRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Advertisement, error) {
	return nil, nil
}
func (f *discoveryAdRepo) ListByStatus(ctx context.Context, status models.AdStatus, skip, limit int64) ([]*models.Advertisement, int64, error) {
	return nil, 0, nil
}
func (f *discoveryAdRepo) ListByBusiness(ctx context.Context, id primitive.ObjectID, skip, limit int64) ([]*models.Advertisement, int64, error) {
	return nil, 0, nil
}
func (f *discoveryAdRepo) ListActive(ctx context.Context) ([]*models.Advertisement, error) {
	f.listCalls++
	return f.active, nil
}
func (f *discoveryAdRepo) Approve(ctx context.Context, id primitive.ObjectID, expireAt time.Time) error {
	return nil
}
func (f *discoveryAdRepo) Reject(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *discoveryAdRepo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type discoveryCategoryRepo struct {
	byName map[string][]primitive.ObjectID
}

func (f *discoveryCategoryRepo) Create(ctx context.Context, c *models.Category) error { return nil }
func (f *discoveryCategoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return nil, nil
}
func (f *discoveryCategoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	return nil, nil
}
func (f *discoveryCategoryRepo) FindIDsByName(ctx context.Context, term string) ([]primitive.ObjectID, error) {
	return f.byName[term], nil
}

type discoverySearchTermRepo struct {
	mu     sync.Mutex
	counts map[string]int
}

func (f *discoverySearchTermRepo) IncrementCount(ctx context.Context, term string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts == nil {
		f.counts = map[string]int{}
	}
	f.counts[term]++
	return nil
}
func (f *discoverySearchTermRepo) TopSearched(ctx context.Context, limit int64) ([]*models.SearchTerm, error) {
	return nil, nil
}
func (f *discoverySearchTermRepo) count(term string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[term]
}

func newDiscoveryService(t *testing.T, businessRepo *discoveryBusinessRepo, adRepo *discoveryAdRepo, categoryRepo *discoveryCategoryRepo, searchRepo *discoverySearchTermRepo) DiscoveryService {
	t.Helper()
	if businessRepo == nil {
		businessRepo = &discoveryBusinessRepo{}
	}
	if adRepo == nil {
		adRepo = &discoveryAdRepo{}
	}
	if categoryRepo == nil {
		categoryRepo = &discoveryCategoryRepo{}
	}
	if searchRepo == nil {
		searchRepo = &discoverySearchTermRepo{}
	}
	return NewDiscoveryService(businessRepo, nil, nil, adRepo, categoryRepo, searchRepo, nil, newTestLogger(t))
}

func TestNearbyBusinessesAnnotatesDistance(t *testing.T) {
	businessRepo := &discoveryBusinessRepo{
		results: []*models.BusinessResult{
			{Name: "Corner Bakery", DistanceKM: 1.23456},
			{Name: "Hill Cafe", DistanceKM: 0},
		},
	}
	svc := newDiscoveryService(t, businessRepo, nil, nil, nil)

	results, err := svc.NearbyBusinesses(context.Background(), &DiscoveryParams{Latitude: 10, Longitude: 76})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "1.23", results[0].Distance)
	assert.Equal(t, "0.00", results[1].Distance)
}

func TestNearbyBusinessesEmptyResultIsNotAnError(t *testing.T) {
	svc := newDiscoveryService(t, &discoveryBusinessRepo{}, nil, nil, nil)

	results, err := svc.NearbyBusinesses(context.Background(), &DiscoveryParams{Latitude: 10, Longitude: 76})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBuildQueryUnionsCategoryNameMatches(t *testing.T) {
	categoryID := primitive.NewObjectID()
	businessRepo := &discoveryBusinessRepo{}
	categoryRepo := &discoveryCategoryRepo{byName: map[string][]primitive.ObjectID{
		"plumber": {categoryID},
	}}
	svc := newDiscoveryService(t, businessRepo, nil, categoryRepo, nil)

	_, err := svc.NearbyBusinesses(context.Background(), &DiscoveryParams{
		Latitude:  10,
		Longitude: 76,
		Search:    "plumber",
	})
	require.NoError(t, err)
	require.NotNil(t, businessRepo.lastQuery)
	assert.Equal(t, "plumber", businessRepo.lastQuery.Search)
	assert.Contains(t, businessRepo.lastQuery.CategoryIDs, categoryID)
}

func TestBuildQueryAppliesExplicitCategoryWithoutSearch(t *testing.T) {
	categoryID := primitive.NewObjectID()
	businessRepo := &discoveryBusinessRepo{}
	svc := newDiscoveryService(t, businessRepo, nil, nil, nil)

	_, err := svc.NearbyBusinesses(context.Background(), &DiscoveryParams{
		Latitude:   10,
		Longitude:  76,
		CategoryID: categoryID.Hex(),
	})
	require.NoError(t, err)
	require.NotNil(t, businessRepo.lastQuery)
	assert.Equal(t, categoryID, businessRepo.lastQuery.CategoryID)
	assert.Empty(t, businessRepo.lastQuery.CategoryIDs)
}

func TestBuildQueryKeepsExplicitCategoryOutOfSearchUnion(t *testing.T) {
	explicitID := primitive.NewObjectID()
	nameMatchID := primitive.NewObjectID()
	businessRepo := &discoveryBusinessRepo{}
	categoryRepo := &discoveryCategoryRepo{byName: map[string][]primitive.ObjectID{
		"plumber": {nameMatchID},
	}}
	svc := newDiscoveryService(t, businessRepo, nil, categoryRepo, nil)

	_, err := svc.NearbyBusinesses(context.Background(), &DiscoveryParams{
		Latitude:   10,
		Longitude:  76,
		Search:     "plumber",
		CategoryID: explicitID.Hex(),
	})
	require.NoError(t, err)
	require.NotNil(t, businessRepo.lastQuery)
	assert.Equal(t, explicitID, businessRepo.lastQuery.CategoryID)
	assert.Equal(t, []primitive.ObjectID{nameMatchID}, businessRepo.lastQuery.CategoryIDs)
}

func TestSearchIncrementsCounterWithoutBlocking(t *testing.T) {
	searchRepo := &discoverySearchTermRepo{}
	svc := newDiscoveryService(t, nil, nil, nil, searchRepo)

	_, err := svc.NearbyBusinesses(context.Background(), &DiscoveryParams{
		Latitude:  10,
		Longitude: 76,
		Search:    "  Plumber ",
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return searchRepo.count("plumber") == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSearchCounterSkipsBlankTerms(t *testing.T) {
	searchRepo := &discoverySearchTermRepo{}
	svc := newDiscoveryService(t, nil, nil, nil, searchRepo)

	_, err := svc.NearbyBusinesses(context.Background(), &DiscoveryParams{
		Latitude:  10,
		Longitude: 76,
		Search:    "   ",
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, searchRepo.count(""))
}

func TestVisibleAdsFiltersByViewerLocation(t *testing.T) {
	near := &models.Advertisement{
		Title:    "near",
		IsActive: true,
		Location: models.NewGeoPoint(10.0, 76.0),
		RadiusKM: 5,
	}
	far := &models.Advertisement{
		Title:    "far",
		IsActive: true,
		Location: models.NewGeoPoint(10.0, 76.0),
		RadiusKM: 5,
	}
	admin := &models.Advertisement{
		Title:           "admin",
		IsActive:        true,
		IsPostedByAdmin: true,
	}
	adRepo := &discoveryAdRepo{active: []*models.Advertisement{near, far, admin}}
	svc := newDiscoveryService(t, nil, adRepo, nil, nil)

	// Viewer inside the 5 km radius.
	ads, err := svc.VisibleAds(context.Background(), 10.01, 76.01, 0, 20)
	require.NoError(t, err)
	assert.Len(t, ads, 3)

	// Viewer well outside: only the admin ad remains.
	ads, err = svc.VisibleAds(context.Background(), 11.0, 77.0, 0, 20)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "admin", ads[0].Title)
}

func TestVisibleAdsPagination(t *testing.T) {
	var active []*models.Advertisement
	for i := 0; i < 5; i++ {
		active = append(active, &models.Advertisement{
			IsActive:        true,
			IsPostedByAdmin: true,
		})
	}
	adRepo := &discoveryAdRepo{active: active}
	svc := newDiscoveryService(t, nil, adRepo, nil, nil)

	ads, err := svc.VisibleAds(context.Background(), 10, 76, 3, 20)
	require.NoError(t, err)
	assert.Len(t, ads, 2)

	ads, err = svc.VisibleAds(context.Background(), 10, 76, 10, 20)
	require.NoError(t, err)
	assert.Empty(t, ads)

	ads, err = svc.VisibleAds(context.Background(), 10, 76, 0, 2)
	require.NoError(t, err)
	assert.Len(t, ads, 2)
}
