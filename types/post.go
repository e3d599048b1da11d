package types

import "time"

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest id 可省略，携带时必须与路径一致
type UpdatePostRequest struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PostItem struct {
	ID         int64        `json:"id"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	AuthorID   string       `json:"authorId"`
	AuthorName string       `json:"authorName,omitempty"`
	Author     *UserSummary `json:"author,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  *time.Time   `json:"updatedAt"`
	Likes      []LikeItem   `json:"likes"`
	LikesCount int          `json:"likesCount"`
}
