package services

import (
	"context"
	"time"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/internal/utils"
	"nearmarket/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiscoveryParams is a parsed, validated proximity query.
type DiscoveryParams struct {
	Latitude   float64
	Longitude  float64
	Search     string
	CategoryID string
	Type       models.BusinessType
	OffersOnly bool
	Skip       int64
	Limit      int64
}

type DiscoveryService interface {
	NearbyBusinesses(ctx context.Context, params *DiscoveryParams) ([]*models.BusinessResult, error)
	NearbyProducts(ctx context.Context, params *DiscoveryParams) ([]*models.ProductResult, error)
	NearbyClassifieds(ctx context.Context, params *DiscoveryParams) ([]*models.ClassifiedResult, error)
	VisibleAds(ctx context.Context, viewerLat, viewerLng float64, skip, limit int64) ([]*models.Advertisement, error)
	TopSearchTerms(ctx context.Context, limit int64) ([]*models.SearchTerm, error)
}

const activeAdsCacheKey = "discovery:active_ads"
const activeAdsCacheTTL = 30 * time.Second

type discoveryService struct {
	businessRepo   interfaces.BusinessRepository
	productRepo    interfaces.ProductRepository
	classifiedRepo interfaces.ClassifiedRepository
	adRepo         interfaces.AdvertisementRepository
	categoryRepo   interfaces.CategoryRepository
	searchTermRepo interfaces.SearchTermRepository
	cache          CacheService
	log            *logger.Logger
}

func NewDiscoveryService(
	businessRepo interfaces.BusinessRepository,
	productRepo interfaces.ProductRepository,
	classifiedRepo interfaces.ClassifiedRepository,
	adRepo interfaces.AdvertisementRepository,
	categoryRepo interfaces.CategoryRepository,
	searchTermRepo interfaces.SearchTermRepository,
	cache CacheService,
	log *logger.Logger,
) DiscoveryService {
	return &discoveryService{
		businessRepo:   businessRepo,
		productRepo:    productRepo,
		classifiedRepo: classifiedRepo,
		adRepo:         adRepo,
		categoryRepo:   categoryRepo,
		searchTermRepo: searchTermRepo,
		cache:          cache,
		log:            log,
	}
}

func (s *discoveryService) NearbyBusinesses(ctx context.Context, params *DiscoveryParams) ([]*models.BusinessResult, error) {
	query, err := s.buildQuery(ctx, params)
	if err != nil {
		return nil, err
	}

	results, err := s.businessRepo.FindNearby(ctx, query)
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		r.Distance = utils.FormatDistance(r.DistanceKM)
	}

	s.recordSearch(params.Search)
	return results, nil
}

func (s *discoveryService) NearbyProducts(ctx context.Context, params *DiscoveryParams) ([]*models.ProductResult, error) {
	query, err := s.buildQuery(ctx, params)
	if err != nil {
		return nil, err
	}

	results, err := s.productRepo.FindNearby(ctx, query)
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		r.Distance = utils.FormatDistance(r.DistanceKM)
	}

	s.recordSearch(params.Search)
	return results, nil
}

func (s *discoveryService) NearbyClassifieds(ctx context.Context, params *DiscoveryParams) ([]*models.ClassifiedResult, error) {
	query, err := s.buildQuery(ctx, params)
	if err != nil {
		return nil, err
	}

	results, err := s.classifiedRepo.FindNearby(ctx, query)
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		r.Distance = utils.FormatDistance(r.DistanceKM)
	}

	s.recordSearch(params.Search)
	return results, nil
}

// VisibleAds applies the visibility rule to the active ad set for the
// viewer's location. The active set is cached briefly; the per-viewer
// filter always runs fresh.
func (s *discoveryService) VisibleAds(ctx context.Context, viewerLat, viewerLng float64, skip, limit int64) ([]*models.Advertisement, error) {
	ads, err := s.activeAds(ctx)
	if err != nil {
		return nil, err
	}

	visible := []*models.Advertisement{}
	for _, ad := range ads {
		if ad.IsVisibleTo(viewerLat, viewerLng) {
			visible = append(visible, ad)
		}
	}

	if skip >= int64(len(visible)) {
		return []*models.Advertisement{}, nil
	}
	visible = visible[skip:]
	if limit > 0 && limit < int64(len(visible)) {
		visible = visible[:limit]
	}

	return visible, nil
}

func (s *discoveryService) TopSearchTerms(ctx context.Context, limit int64) ([]*models.SearchTerm, error) {
	return s.searchTermRepo.TopSearched(ctx, limit)
}

func (s *discoveryService) activeAds(ctx context.Context) ([]*models.Advertisement, error) {
	if s.cache != nil {
		var cached []*models.Advertisement
		if err := s.cache.Get(ctx, activeAdsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	ads, err := s.adRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, activeAdsCacheKey, ads, activeAdsCacheTTL); err != nil {
			s.log.WithError(err).Warn("failed to cache active ads")
		}
	}

	return ads, nil
}

func (s *discoveryService) buildQuery(ctx context.Context, params *DiscoveryParams) (*interfaces.NearbyQuery, error) {
	query := &interfaces.NearbyQuery{
		Latitude:   params.Latitude,
		Longitude:  params.Longitude,
		Search:     params.Search,
		Type:       params.Type,
		OffersOnly: params.OffersOnly,
		Skip:       params.Skip,
		Limit:      params.Limit,
	}

	// An explicit category param narrows the result set; it is never part
	// of the search union below.
	if params.CategoryID != "" {
		id, err := primitive.ObjectIDFromHex(params.CategoryID)
		if err == nil {
			query.CategoryID = id
		}
	}

	// A search term also matches records via their category's name.
	if params.Search != "" {
		ids, err := s.categoryRepo.FindIDsByName(ctx, params.Search)
		if err != nil {
			s.log.WithError(err).Warn("category name resolution failed for search")
		} else {
			query.CategoryIDs = append(query.CategoryIDs, ids...)
		}
	}

	return query, nil
}

// recordSearch bumps the denormalized search counter. Fire and forget:
// it must never block or fail the query it rode in on.
func (s *discoveryService) recordSearch(term string) {
	normalized := models.NormalizeSearchTerm(term)
	if normalized == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.searchTermRepo.IncrementCount(ctx, normalized); err != nil {
			s.log.WithError(err).WithField("term", normalized).Warn("search counter increment failed")
		}
	}()
}
