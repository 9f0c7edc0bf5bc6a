package dto

// CreateSubscriptionRequest carries the full subscription object minus the
// identifier. PriceUSD is a pointer so a missing price fails validation
// instead of defaulting to zero.
type CreateSubscriptionRequest struct {
	PatronID    string         `json:"patron_id" validate:"required"`
	ArtistID    string         `json:"artist_id" validate:"required"`
	Tier        string         `json:"tier"`
	PriceUSD    *float64       `json:"price_usd" validate:"required"`
	Status      string         `json:"status" validate:"required"`
	StartedAt   string         `json:"started_at" validate:"required"`
	RenewalDate string         `json:"renewal_date" validate:"required"`
	LastPayment map[string]any `json:"last_payment" validate:"required"`
}
