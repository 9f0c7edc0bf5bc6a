package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messagePayload() map[string]any {
	return map[string]any{
		"sender_id":   "patron-1",
		"receiver_id": "artist-1",
		"content":     "Is the vase still available?",
		"sent_at":     "2024-03-01T10:00:00Z",
	}
}

func TestCreateMessage(t *testing.T) {
	app, _ := newTestApp()

	resp := request(t, app, "POST", "/api/messages", messagePayload())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeObject(t, resp)
	id, ok := body["_id"].(string)
	require.True(t, ok, "message id should be returned as a string")
	assert.NotEmpty(t, id)
	assert.Equal(t, false, body["read"], "read flag defaults to false")
	attachments, ok := body["attachments"].([]any)
	require.True(t, ok)
	assert.Empty(t, attachments)
}

func TestCreateMessageValidation(t *testing.T) {
	app, _ := newTestApp()

	payload := messagePayload()
	delete(payload, "sent_at")

	resp := request(t, app, "POST", "/api/messages", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListMessages(t *testing.T) {
	app, _ := newTestApp()

	request(t, app, "POST", "/api/messages", messagePayload())

	messages := decodeArray(t, request(t, app, "GET", "/api/messages", nil))
	require.Len(t, messages, 1)
	assert.Equal(t, "Is the vase still available?", messages[0]["content"])
	assert.Equal(t, "2024-03-01T10:00:00Z", messages[0]["sent_at"])
}
