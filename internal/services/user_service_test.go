package services_test

import (
	"context"
	"testing"

	"github.com/craftygram/craftygram-backend/internal/dto"
	"github.com/craftygram/craftygram-backend/internal/services"
	"github.com/craftygram/craftygram-backend/internal/store/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func createRequest(username, email string) *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: "pw",
		Role:     "artist",
		Profile:  dto.CreateUserProfile{Name: "Ana"},
	}
}

func TestUserServiceCreateHashesPassword(t *testing.T) {
	st := memstore.New()
	svc := services.NewUserService(st)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest("ana", "a@x.com"))
	require.NoError(t, err)

	assert.NotContains(t, created, "password")
	assert.NotContains(t, created, "password_hash")
	assert.IsType(t, "", created["_id"])

	doc, err := st.Collection("users").FindOne(ctx, bson.M{"username": "ana"})
	require.NoError(t, err)

	hash, ok := doc["password_hash"].(string)
	require.True(t, ok, "stored document should carry the hash")
	assert.NotEqual(t, "pw", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw")))
}

func TestUserServiceDuplicateUsername(t *testing.T) {
	st := memstore.New()
	svc := services.NewUserService(st)
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("ana", "a@x.com"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createRequest("ana", "other@x.com"))
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
}

func TestUserServiceDuplicateEmailInsertsOnce(t *testing.T) {
	st := memstore.New()
	svc := services.NewUserService(st)
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest("ana", "a@x.com"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createRequest("bea", "a@x.com"))
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	docs, err := st.Collection("users").Find(ctx, bson.M{}, 100)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestUserServiceGetByID(t *testing.T) {
	st := memstore.New()
	svc := services.NewUserService(st)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest("ana", "a@x.com"))
	require.NoError(t, err)
	id := created["_id"].(string)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ana", got["username"])

	_, err = svc.GetByID(ctx, "short")
	assert.ErrorIs(t, err, services.ErrInvalidID)
}
