package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleArtist = "artist"
	RolePatron = "patron"
)

// ErrNotCanonical marks a stored user document that predates the current
// schema and is missing required fields.
var ErrNotCanonical = errors.New("user document missing canonical fields")

// SocialLinks holds the profile link fields the app knows about. Extra
// platforms stored by older app versions stay in the raw document.
type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	TikTok    string `bson:"tiktok,omitempty" json:"tiktok,omitempty"`
}

// Profile is the nested profile section of a user document.
type Profile struct {
	Name        string       `bson:"name" json:"name"`
	Bio         string       `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL   string       `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	University  string       `bson:"university,omitempty" json:"university,omitempty"`
	SocialLinks *SocialLinks `bson:"social_links,omitempty" json:"social_links,omitempty"`
}

// User is the single versioned user schema. User documents have been written
// under several shapes over the system's history, so every field beyond the
// identifier is optional at decode time; CheckCanonical enforces the full
// current shape where a strict response is required.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username     string             `bson:"username,omitempty" json:"username,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Role         string             `bson:"role,omitempty" json:"role,omitempty"`
	Profile      *Profile           `bson:"profile,omitempty" json:"profile,omitempty"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`
	CreatedAt    *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// UserFromDocument decodes a raw user document leniently: missing fields stay
// zero and unknown fields are ignored. The raw document remains the source of
// truth for responses.
func UserFromDocument(doc bson.M) (*User, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var u User
	if err := bson.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CheckCanonical verifies the user carries every field the strict response
// shape requires.
func (u *User) CheckCanonical() error {
	if u.Username == "" || u.Email == "" || u.Role == "" {
		return ErrNotCanonical
	}
	if u.Profile == nil || u.Profile.Name == "" {
		return ErrNotCanonical
	}
	if u.CreatedAt == nil || u.CreatedAt.IsZero() {
		return ErrNotCanonical
	}
	return nil
}
