// Package store wraps the document database behind a small collection-scoped
// interface so services and tests do not need a live MongoDB.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrNoDocuments is returned by FindOne when nothing matches the filter.
	ErrNoDocuments = errors.New("store: no documents in result")

	// ErrDuplicate is returned by InsertOne when a storage-level unique index
	// rejects the document. The application-level uniqueness check stays the
	// fast path; an operator who adds unique indexes on username/email gets
	// the same conflict behavior through this error.
	ErrDuplicate = errors.New("store: duplicate key")
)

// Collection is the subset of document-store operations the services use.
type Collection interface {
	InsertOne(ctx context.Context, doc any) (insertedID any, err error)
	Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error)
	FindOne(ctx context.Context, filter bson.M) (bson.M, error)
	DeleteOne(ctx context.Context, filter bson.M) (deleted int64, err error)
}

// Store hands out named collections.
type Store interface {
	Collection(name string) Collection
}
