package request_models

type CreatePostRequest struct {
	Title   string   `json:"title" binding:"required,max=200"`
	Content string   `json:"content" binding:"required"`
	Images  []string `json:"images"`
	TripID  *string  `json:"tripId" binding:"omitempty,uuid"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}
