package validators

type ClassifiedCreateRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Price       float64  `json:"price" validate:"gte=0"`
	ImageKeys   []string `json:"image_keys" validate:"omitempty,max=6"`
	Latitude    string   `json:"latitude" validate:"required,latitude_str"`
	Longitude   string   `json:"longitude" validate:"required,longitude_str"`
}

type ClassifiedUpdateRequest struct {
	Title       string   `json:"title" validate:"omitempty,min=2,max=200"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageKeys   []string `json:"image_keys" validate:"omitempty,max=6"`
}
