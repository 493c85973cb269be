package utils

import "time"

// Application Constants
const (
	AppName    = "NearMarket"
	AppVersion = "1.0.0"

	// Default values
	DefaultLanguage = "en"
	DefaultCurrency = "USD"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultLimit = 20
	MaxLimit     = 100

	// Geography
	EarthRadiusKM = 6371.0

	// Discovery
	DefaultSearchRadiusKM = 10.0
	MaxSearchRadiusKM     = 100.0

	// Advertisements
	MinAdRadiusKM = 1.0
	MaxAdRadiusKM = 100.0

	// Background sweeps
	AdExpirySweepInterval     = 10 * time.Minute
	ClassifiedCleanupInterval = 24 * time.Hour
	ClassifiedListingTTL      = 30 * 24 * time.Hour

	// File Upload
	MaxImageSize    = 5 * 1024 * 1024 // 5MB
	ThumbnailWidth  = 150
	ThumbnailHeight = 150

	// Push Notification
	FCMMulticastLimit   = 500
	NotificationTimeout = 30 * time.Second

	// Response statuses
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized access"
	ErrForbidden        = "Access forbidden"
)

// Collection Names
const (
	CollectionBusinesses     = "businesses"
	CollectionProducts       = "products"
	CollectionAdvertisements = "advertisements"
	CollectionClassifieds    = "classified_listings"
	CollectionCategories     = "categories"
	CollectionUsers          = "users"
	CollectionSearchTerms    = "search_terms"
	CollectionNotifications  = "notifications"
	CollectionChatMessages   = "chat_messages"
	CollectionAdPlans        = "ad_plans"
)
