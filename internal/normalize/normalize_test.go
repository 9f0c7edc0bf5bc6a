package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDocumentNormalizesStoreTypes(t *testing.T) {
	oid := primitive.NewObjectID()
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	price, err := primitive.ParseDecimal128("19.99")
	require.NoError(t, err)

	doc := bson.M{
		"_id":        oid,
		"created_at": primitive.NewDateTimeFromTime(ts),
		"price_usd":  price,
		"profile": bson.M{
			"name":   "Ana",
			"joined": primitive.NewDateTimeFromTime(ts),
		},
		"media": bson.A{
			bson.M{"uploaded": primitive.NewDateTimeFromTime(ts)},
			"plain-string",
		},
		"likes":    int32(3),
		"username": "ana",
	}

	got := Document(doc)

	assert.Equal(t, oid.Hex(), got["_id"])
	assert.Equal(t, "2024-05-01T12:30:00Z", got["created_at"])
	assert.Equal(t, 19.99, got["price_usd"])
	assert.Equal(t, int32(3), got["likes"])
	assert.Equal(t, "ana", got["username"])

	profile, ok := got["profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", profile["name"])
	assert.Equal(t, "2024-05-01T12:30:00Z", profile["joined"])

	media, ok := got["media"].([]any)
	require.True(t, ok)
	require.Len(t, media, 2)
	nested, ok := media[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2024-05-01T12:30:00Z", nested["uploaded"])
	assert.Equal(t, "plain-string", media[1])
}

func TestDocumentIdempotent(t *testing.T) {
	price, err := primitive.ParseDecimal128("4.50")
	require.NoError(t, err)

	doc := bson.M{
		"_id":     primitive.NewObjectID(),
		"sent_at": primitive.NewDateTimeFromTime(time.Now()),
		"price":   price,
		"nested":  bson.M{"inner": bson.A{primitive.NewObjectID()}},
	}

	once := Document(doc)
	twice := Document(bson.M(once))

	assert.Equal(t, once, twice)
}

func TestValuePassThrough(t *testing.T) {
	assert.Equal(t, "hello", Value("hello"))
	assert.Equal(t, 42, Value(42))
	assert.Equal(t, true, Value(true))
	assert.Nil(t, Value(nil))
}

func TestValueTimeAndBsonD(t *testing.T) {
	ts := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2023-01-02T03:04:05Z", Value(ts))

	d := bson.D{{Key: "a", Value: primitive.NewDateTimeFromTime(ts)}}
	got, ok := Value(d).(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "2023-01-02T03:04:05Z", got["a"])
}
