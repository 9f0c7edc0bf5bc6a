package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subscription links a patron to an artist. Nothing prevents duplicate
// patron/artist pairs; each document stands alone.
type Subscription struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	PatronID    string               `bson:"patron_id" json:"patron_id"`
	ArtistID    string               `bson:"artist_id" json:"artist_id"`
	Tier        string               `bson:"tier" json:"tier"`
	PriceUSD    primitive.Decimal128 `bson:"price_usd" json:"price_usd"`
	Status      string               `bson:"status" json:"status"`
	StartedAt   string               `bson:"started_at" json:"started_at"`
	RenewalDate string               `bson:"renewal_date" json:"renewal_date"`
	LastPayment map[string]any       `bson:"last_payment" json:"last_payment"`
}
