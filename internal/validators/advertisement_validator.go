package validators

// AdSubmissionRequest is a business submitting a targeted advertisement.
// Location and radius are mandatory for business ads; admin posts use
// AdminAdRequest and carry neither.
type AdSubmissionRequest struct {
	Title     string  `json:"title" validate:"required,min=2,max=200"`
	ImageKey  string  `json:"image_key" validate:"required"`
	Latitude  string  `json:"latitude" validate:"required,latitude_str"`
	Longitude string  `json:"longitude" validate:"required,longitude_str"`
	RadiusKM  float64 `json:"radius_km" validate:"required,ad_radius"`
	PlanID    string  `json:"plan_id" validate:"required,object_id"`
	PaymentID string  `json:"payment_id" validate:"required"`
}

type AdminAdRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=200"`
	ImageKey string `json:"image_key" validate:"required"`
}

type AdDecisionRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type AdResubmitRequest struct {
	PaymentID string `json:"payment_id" validate:"required"`
}

type AdPlanCheckoutRequest struct {
	PlanID string `json:"plan_id" validate:"required,object_id"`
}
