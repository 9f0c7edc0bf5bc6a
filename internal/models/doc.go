package models

import "go.mongodb.org/mongo-driver/bson"

// ToDocument round-trips a model through the BSON codec into a raw document,
// the same representation reads from the store produce.
func ToDocument(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
