package dto

type CreateMessageRequest struct {
	SenderID    string   `json:"sender_id" validate:"required"`
	ReceiverID  string   `json:"receiver_id" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Attachments []string `json:"attachments"`
	Read        bool     `json:"read"`
	SentAt      string   `json:"sent_at" validate:"required"`
}
