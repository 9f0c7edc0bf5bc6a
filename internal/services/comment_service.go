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

type CommentService struct {
	comments store.Collection
}

func NewCommentService(st store.Store) *CommentService {
	return &CommentService{comments: st.Collection("comments")}
}

// Create persists a comment. Post and user references are accepted as-is.
func (s *CommentService) Create(ctx context.Context, req *dto.CreateCommentRequest) (map[string]any, error) {
	comment := models.Comment{
		PostID:  req.PostID,
		UserID:  req.UserID,
		Content: req.Content,
	}

	doc, err := models.ToDocument(comment)
	if err != nil {
		return nil, fmt.Errorf("encode comment: %w", err)
	}

	id, err := s.comments.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	doc["_id"] = id
	return normalize.Document(doc), nil
}

func (s *CommentService) List(ctx context.Context) ([]map[string]any, error) {
	docs, err := s.comments.Find(ctx, bson.M{}, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, normalize.Document(doc))
	}
	return out, nil
}
