package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post is a piece of published work. The author reference is stored as given
// and never checked against the users collection.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AuthorID    string             `bson:"author_id" json:"author_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Media       []map[string]any   `bson:"media" json:"media"`
	Visibility  string             `bson:"visibility" json:"visibility"`
	Likes       int                `bson:"likes" json:"likes"`
	Comments    int                `bson:"comments" json:"comments"`
}
