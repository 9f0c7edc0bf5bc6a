package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	app, _ := newTestApp()

	payload := map[string]any{
		"post_id": "64f0c3a2e1b2c3d4e5f60718",
		"user_id": "someuser",
		"content": "Love the glaze on this one",
	}

	resp := request(t, app, "POST", "/api/comments", payload)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeObject(t, resp)
	id, ok := body["_id"].(string)
	require.True(t, ok, "comment id should be returned as a string")
	assert.NotEmpty(t, id)
	assert.Equal(t, "Love the glaze on this one", body["content"])
}

func TestCreateCommentValidation(t *testing.T) {
	app, _ := newTestApp()

	resp := request(t, app, "POST", "/api/comments", map[string]any{
		"post_id": "64f0c3a2e1b2c3d4e5f60718",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListComments(t *testing.T) {
	app, _ := newTestApp()

	payload := map[string]any{
		"post_id": "64f0c3a2e1b2c3d4e5f60718",
		"user_id": "someuser",
		"content": "first",
	}
	request(t, app, "POST", "/api/comments", payload)

	comments := decodeArray(t, request(t, app, "GET", "/api/comments", nil))
	require.Len(t, comments, 1)
	assert.Equal(t, "first", comments[0]["content"])
}
