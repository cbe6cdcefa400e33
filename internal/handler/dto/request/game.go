package request

type SetGameAvailableRequest struct {
	Available *bool `json:"available" binding:"required"`
}

type SetGameRateRequest struct {
	PricePerHour *int `json:"price_per_hour" binding:"required,min=0"`
}
