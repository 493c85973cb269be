package validators

type CategoryCreateRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	IconKey string `json:"icon_key" validate:"omitempty,max=300"`
}
