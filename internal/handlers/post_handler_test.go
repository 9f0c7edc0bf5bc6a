package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func postPayload() map[string]any {
	return map[string]any{
		"author_id":   "someuser",
		"title":       "Clay study",
		"description": "Wheel-thrown vase, first attempt",
		"media": []map[string]any{
			{"type": "image", "url": "https://cdn.example.com/vase.jpg"},
		},
		"visibility": "public",
	}
}

func TestCreatePost(t *testing.T) {
	app, _ := newTestApp()

	resp := request(t, app, "POST", "/api/posts", postPayload())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeObject(t, resp)
	id, ok := body["_id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)
	assert.Equal(t, "Clay study", body["title"])
	assert.EqualValues(t, 0, body["likes"])
	assert.EqualValues(t, 0, body["comments"])
}

func TestCreatePostValidation(t *testing.T) {
	app, _ := newTestApp()

	payload := postPayload()
	delete(payload, "title")

	resp := request(t, app, "POST", "/api/posts", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListPosts(t *testing.T) {
	app, _ := newTestApp()

	request(t, app, "POST", "/api/posts", postPayload())
	request(t, app, "POST", "/api/posts", postPayload())

	posts := decodeArray(t, request(t, app, "GET", "/api/posts", nil))
	require.Len(t, posts, 2)
	for _, p := range posts {
		_, ok := p["_id"].(string)
		assert.True(t, ok, "post id should normalize to a string")
	}
}

func TestDeletePost(t *testing.T) {
	app, _ := newTestApp()

	created := decodeObject(t, request(t, app, "POST", "/api/posts", postPayload()))
	id := created["_id"].(string)

	resp := request(t, app, "DELETE", "/api/posts/"+id, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeObject(t, resp)
	assert.Equal(t, "Post deleted successfully", body["message"])

	// Deleting again is a plain not-found, nothing else changes
	resp = request(t, app, "DELETE", "/api/posts/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = request(t, app, "DELETE", "/api/posts/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = request(t, app, "DELETE", "/api/posts/garbage", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
