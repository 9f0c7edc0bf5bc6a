package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscriptionPayload() map[string]any {
	return map[string]any{
		"patron_id":    "patron-1",
		"artist_id":    "artist-1",
		"tier":         "supporter",
		"price_usd":    9.99,
		"status":       "active",
		"started_at":   "2024-01-01T00:00:00Z",
		"renewal_date": "2024-02-01T00:00:00Z",
		"last_payment": map[string]any{"amount": 9.99, "method": "card"},
	}
}

func TestCreateSubscription(t *testing.T) {
	app, _ := newTestApp()

	resp := request(t, app, "POST", "/api/subscriptions", subscriptionPayload())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeObject(t, resp)
	id, ok := body["_id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)
	assert.Equal(t, 9.99, body["price_usd"], "stored decimal should come back as a float")

	payment, ok := body["last_payment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "card", payment["method"])
}

func TestCreateSubscriptionValidation(t *testing.T) {
	app, _ := newTestApp()

	payload := subscriptionPayload()
	delete(payload, "price_usd")

	resp := request(t, app, "POST", "/api/subscriptions", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListSubscriptions(t *testing.T) {
	app, _ := newTestApp()

	request(t, app, "POST", "/api/subscriptions", subscriptionPayload())

	subs := decodeArray(t, request(t, app, "GET", "/api/subscriptions", nil))
	require.Len(t, subs, 1)
	assert.Equal(t, 9.99, subs[0]["price_usd"], "Decimal128 should normalize to a float on reads")
	assert.Equal(t, "supporter", subs[0]["tier"])

	// Duplicate patron/artist pairs are allowed
	request(t, app, "POST", "/api/subscriptions", subscriptionPayload())
	subs = decodeArray(t, request(t, app, "GET", "/api/subscriptions", nil))
	assert.Len(t, subs, 2)
}
