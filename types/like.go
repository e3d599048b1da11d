package types

import "time"

type LikeItem struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type LikeStatusResponse struct {
	HasLiked bool `json:"hasLiked"`
}
