package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/craftygram/craftygram-backend/internal/dto"
	"github.com/craftygram/craftygram-backend/internal/models"
	"github.com/craftygram/craftygram-backend/internal/normalize"
	"github.com/craftygram/craftygram-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// listLimit caps every listing; there is no pagination in the API.
const listLimit = 100

var (
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUserExists    = errors.New("username or email already registered")
	ErrInvalidID     = errors.New("invalid id")
	ErrUserNotFound  = errors.New("user not found")
)

type UserService struct {
	users store.Collection
}

func NewUserService(st store.Store) *UserService {
	return &UserService{users: st.Collection("users")}
}

// Create registers a user. Uniqueness of username and email is checked before
// the insert; two concurrent registrations can still race past the check, and
// a storage-level unique index (surfacing store.ErrDuplicate) closes that
// window with the same conflict outcome. The password is bcrypt-hashed and
// never stored or returned in plaintext; created_at is stamped server-side.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (map[string]any, error) {
	if _, err := s.users.FindOne(ctx, bson.M{"username": req.Username}); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNoDocuments) {
		return nil, fmt.Errorf("username lookup: %w", err)
	}
	if _, err := s.users.FindOne(ctx, bson.M{"email": req.Email}); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNoDocuments) {
		return nil, fmt.Errorf("email lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		Role:         req.Role,
		Profile:      profileFromPayload(req.Profile),
		PasswordHash: string(hash),
		CreatedAt:    &now,
	}

	doc, err := models.ToDocument(user)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	id, err := s.users.InsertOne(ctx, doc)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	slog.Info("user registered", "username", req.Username, "role", req.Role)

	doc["_id"] = id
	delete(doc, "password_hash")
	return normalize.Document(doc), nil
}

// List returns up to 100 users in the lenient shape: documents written under
// older schema versions come back as stored, minus the credential hash.
func (s *UserService) List(ctx context.Context) ([]map[string]any, error) {
	docs, err := s.users.Find(ctx, bson.M{}, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		delete(doc, "password_hash")
		out = append(out, normalize.Document(doc))
	}
	return out, nil
}

// ListStrict returns only users matching the full canonical shape. Documents
// missing required fields are skipped, never failing the whole listing.
func (s *UserService) ListStrict(ctx context.Context) ([]map[string]any, error) {
	docs, err := s.users.Find(ctx, bson.M{}, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		u, err := models.UserFromDocument(doc)
		if err != nil || u.CheckCanonical() != nil {
			continue
		}
		delete(doc, "password_hash")
		out = append(out, normalize.Document(doc))
	}
	return out, nil
}

// GetByID fetches a single user in the lenient shape. A malformed id is a
// client error, not a lookup miss.
func (s *UserService) GetByID(ctx context.Context, id string) (map[string]any, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	doc, err := s.users.FindOne(ctx, bson.M{"_id": oid})
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	delete(doc, "password_hash")
	return normalize.Document(doc), nil
}

func profileFromPayload(p dto.CreateUserProfile) *models.Profile {
	profile := &models.Profile{
		Name:       p.Name,
		Bio:        p.Bio,
		AvatarURL:  p.AvatarURL,
		University: p.University,
	}
	if p.SocialLinks != nil {
		profile.SocialLinks = &models.SocialLinks{
			Instagram: p.SocialLinks.Instagram,
			TikTok:    p.SocialLinks.TikTok,
		}
	}
	return profile
}
