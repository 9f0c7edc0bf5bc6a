package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Message is a direct message between two users. Delivery is whatever the
// store's natural order gives back; there is no read-marking in the API.
type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SenderID    string             `bson:"sender_id" json:"sender_id"`
	ReceiverID  string             `bson:"receiver_id" json:"receiver_id"`
	Content     string             `bson:"content" json:"content"`
	Attachments []string           `bson:"attachments" json:"attachments"`
	Read        bool               `bson:"read" json:"read"`
	SentAt      string             `bson:"sent_at" json:"sent_at"`
}
