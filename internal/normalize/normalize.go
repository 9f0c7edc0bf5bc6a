// Package normalize converts store-native BSON values into JSON-safe
// equivalents: ObjectIDs become hex strings, datetimes become ISO-8601 text
// and Decimal128 values become floats. Nested documents and arrays are
// normalized recursively.
package normalize

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document normalizes every value of doc. The input is left untouched.
func Document(doc bson.M) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = Value(v)
	}
	return out
}

// Value normalizes a single value. Types with no store-native representation
// pass through unchanged, so applying Value to already-normalized data is the
// identity.
func Value(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339Nano)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case primitive.Decimal128:
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return f
		}
		// NaN and the Decimal128 infinities have no JSON number form.
		return t.String()
	case bson.M:
		return Document(t)
	case map[string]any:
		return Document(t)
	case bson.D:
		return Document(t.Map())
	case bson.A:
		return sequence(t)
	case []any:
		return sequence(t)
	default:
		return v
	}
}

func sequence(in []any) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = Value(v)
	}
	return out
}
