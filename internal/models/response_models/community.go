package response_models

type CommentResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

type PostResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	UserName  string            `json:"userName"`
	TripID    *string           `json:"tripId"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Images    []string          `json:"images"`
	LikeCount int               `json:"likeCount"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt int64             `json:"createdAt"`
}

type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}
