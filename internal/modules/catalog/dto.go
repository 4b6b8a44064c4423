package catalog

type CreateServiceRequest struct {
	ServiceName          string  `json:"service_name" binding:"required"`
	ServiceType          string  `json:"service_type" binding:"required"`
	Description          string  `json:"description"`
	BasePrice            float64 `json:"base_price" binding:"required,gte=0"`
	MaxPeople            int     `json:"max_people"`
	TravelRequired       bool    `json:"travel_required"`
	IncludesBridalShower bool    `json:"includes_bridal_shower"`
}

type UpdateServiceRequest struct {
	ServiceName          *string  `json:"service_name"`
	ServiceType          *string  `json:"service_type"`
	Description          *string  `json:"description"`
	BasePrice            *float64 `json:"base_price"`
	MaxPeople            *int     `json:"max_people"`
	TravelRequired       *bool    `json:"travel_required"`
	IncludesBridalShower *bool    `json:"includes_bridal_shower"`
}
