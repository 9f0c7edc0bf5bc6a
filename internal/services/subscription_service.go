package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/craftygram/craftygram-backend/internal/dto"
	"github.com/craftygram/craftygram-backend/internal/models"
	"github.com/craftygram/craftygram-backend/internal/normalize"
	"github.com/craftygram/craftygram-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidPrice = errors.New("price is not a valid decimal")

type SubscriptionService struct {
	subscriptions store.Collection
}

func NewSubscriptionService(st store.Store) *SubscriptionService {
	return &SubscriptionService{subscriptions: st.Collection("subscriptions")}
}

// Create persists a subscription. The price is stored as a Decimal128 so the
// document carries an exact decimal; the wire shape renders it back as a
// float. Patron and artist references are accepted as-is, and duplicate
// patron/artist pairs are allowed.
func (s *SubscriptionService) Create(ctx context.Context, req *dto.CreateSubscriptionRequest) (map[string]any, error) {
	price, err := primitive.ParseDecimal128(strconv.FormatFloat(*req.PriceUSD, 'f', -1, 64))
	if err != nil {
		return nil, ErrInvalidPrice
	}

	sub := models.Subscription{
		PatronID:    req.PatronID,
		ArtistID:    req.ArtistID,
		Tier:        req.Tier,
		PriceUSD:    price,
		Status:      req.Status,
		StartedAt:   req.StartedAt,
		RenewalDate: req.RenewalDate,
		LastPayment: req.LastPayment,
	}

	doc, err := models.ToDocument(sub)
	if err != nil {
		return nil, fmt.Errorf("encode subscription: %w", err)
	}

	id, err := s.subscriptions.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert subscription: %w", err)
	}

	doc["_id"] = id
	return normalize.Document(doc), nil
}

func (s *SubscriptionService) List(ctx context.Context) ([]map[string]any, error) {
	docs, err := s.subscriptions.Find(ctx, bson.M{}, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, normalize.Document(doc))
	}
	return out, nil
}
