package dto

// CreateUserRequest is the registration payload. Timestamps and identifiers
// are server-assigned; a caller-supplied created_at is ignored.
type CreateUserRequest struct {
	Username string            `json:"username" validate:"required"`
	Email    string            `json:"email" validate:"required,email"`
	Password string            `json:"password" validate:"required"`
	Role     string            `json:"role" validate:"required,oneof=artist patron"`
	Profile  CreateUserProfile `json:"profile" validate:"required"`
}

type CreateUserProfile struct {
	Name        string            `json:"name" validate:"required"`
	Bio         string            `json:"bio"`
	AvatarURL   string            `json:"avatar_url"`
	University  string            `json:"university"`
	SocialLinks *CreateUserSocial `json:"social_links"`
}

type CreateUserSocial struct {
	Instagram string `json:"instagram"`
	TikTok    string `json:"tiktok"`
}
