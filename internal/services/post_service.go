package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftygram/craftygram-backend/internal/dto"
	"github.com/craftygram/craftygram-backend/internal/models"
	"github.com/craftygram/craftygram-backend/internal/normalize"
	"github.com/craftygram/craftygram-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	posts store.Collection
}

func NewPostService(st store.Store) *PostService {
	return &PostService{posts: st.Collection("posts")}
}

// Create persists a post. The author reference is accepted as-is.
func (s *PostService) Create(ctx context.Context, req *dto.CreatePostRequest) (map[string]any, error) {
	post := models.Post{
		AuthorID:    req.AuthorID,
		Title:       req.Title,
		Description: req.Description,
		Media:       req.Media,
		Visibility:  req.Visibility,
		Likes:       req.Likes,
		Comments:    req.Comments,
	}
	if post.Media == nil {
		post.Media = []map[string]any{}
	}

	doc, err := models.ToDocument(post)
	if err != nil {
		return nil, fmt.Errorf("encode post: %w", err)
	}

	id, err := s.posts.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	doc["_id"] = id
	return normalize.Document(doc), nil
}

func (s *PostService) List(ctx context.Context) ([]map[string]any, error) {
	docs, err := s.posts.Find(ctx, bson.M{}, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, normalize.Document(doc))
	}
	return out, nil
}

// Delete removes a post by id. Comments referencing the post stay behind;
// there is no cascade.
func (s *PostService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	deleted, err := s.posts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if deleted == 0 {
		return ErrPostNotFound
	}
	return nil
}
