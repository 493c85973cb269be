package validators

// BusinessCreateRequest registers a store or freelancer profile.
type BusinessCreateRequest struct {
	Name       string   `json:"name" validate:"required,min=2,max=100"`
	Bio        string   `json:"bio" validate:"omitempty,max=1000"`
	Keywords   []string `json:"keywords" validate:"omitempty,max=20,dive,max=50"`
	Type       string   `json:"type" validate:"required,oneof=business freelancer"`
	CategoryID string   `json:"category_id" validate:"required,object_id"`
	Phone      string   `json:"phone" validate:"required,min=7,max=20"`
	Latitude   string   `json:"latitude" validate:"required,latitude_str"`
	Longitude  string   `json:"longitude" validate:"required,longitude_str"`
}

// BusinessUpdateRequest mutates a profile. Coordinates are optional; this
// is the only path that moves a business's stored GeoPoint.
type BusinessUpdateRequest struct {
	Name        string   `json:"name" validate:"omitempty,min=2,max=100"`
	Bio         string   `json:"bio" validate:"omitempty,max=1000"`
	Keywords    []string `json:"keywords" validate:"omitempty,max=20,dive,max=50"`
	CategoryID  string   `json:"category_id" validate:"omitempty,object_id"`
	Phone       string   `json:"phone" validate:"omitempty,min=7,max=20"`
	Latitude    string   `json:"latitude" validate:"omitempty,latitude_str"`
	Longitude   string   `json:"longitude" validate:"omitempty,longitude_str"`
	IsAvailable *bool    `json:"is_available"`
}

type ProductCreateRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Keywords    []string `json:"keywords" validate:"omitempty,max=20,dive,max=50"`
	CategoryID  string   `json:"category_id" validate:"omitempty,object_id"`
	Price       float64  `json:"price" validate:"gte=0"`
	OfferPrice  float64  `json:"offer_price" validate:"omitempty,gte=0"`
	HasOffer    bool     `json:"has_offer"`
	ImageKeys   []string `json:"image_keys" validate:"omitempty,max=10"`
}

type ProductUpdateRequest struct {
	Name        string   `json:"name" validate:"omitempty,min=2,max=200"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Keywords    []string `json:"keywords" validate:"omitempty,max=20,dive,max=50"`
	CategoryID  string   `json:"category_id" validate:"omitempty,object_id"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	OfferPrice  *float64 `json:"offer_price" validate:"omitempty,gte=0"`
	HasOffer    *bool    `json:"has_offer"`
	ImageKeys   []string `json:"image_keys" validate:"omitempty,max=10"`
	IsActive    *bool    `json:"is_active"`
}
