package services

import (
	"context"
	"fmt"

	"github.com/craftygram/craftygram-backend/internal/dto"
	"github.com/craftygram/craftygram-backend/internal/models"
	"github.com/craftygram/craftygram-backend/internal/normalize"
	"github.com/craftygram/craftygram-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

type MessageService struct {
	messages store.Collection
}

func NewMessageService(st store.Store) *MessageService {
	return &MessageService{messages: st.Collection("messages")}
}

// Create persists a direct message. Sender and receiver references are
// accepted as-is; sent_at stays whatever the caller supplied.
func (s *MessageService) Create(ctx context.Context, req *dto.CreateMessageRequest) (map[string]any, error) {
	msg := models.Message{
		SenderID:    req.SenderID,
		ReceiverID:  req.ReceiverID,
		Content:     req.Content,
		Attachments: req.Attachments,
		Read:        req.Read,
		SentAt:      req.SentAt,
	}
	if msg.Attachments == nil {
		msg.Attachments = []string{}
	}

	doc, err := models.ToDocument(msg)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}

	id, err := s.messages.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	doc["_id"] = id
	return normalize.Document(doc), nil
}

func (s *MessageService) List(ctx context.Context) ([]map[string]any, error) {
	docs, err := s.messages.Find(ctx, bson.M{}, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, normalize.Document(doc))
	}
	return out, nil
}
