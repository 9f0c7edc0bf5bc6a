package dto

type CreatePostRequest struct {
	AuthorID    string           `json:"author_id" validate:"required"`
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Media       []map[string]any `json:"media"`
	Visibility  string           `json:"visibility" validate:"required"`
	Likes       int              `json:"likes"`
	Comments    int              `json:"comments"`
}

type CreateCommentRequest struct {
	PostID  string `json:"post_id" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}
