package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Comment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PostID  string             `bson:"post_id" json:"post_id"`
	UserID  string             `bson:"user_id" json:"user_id"`
	Content string             `bson:"content" json:"content"`
}
