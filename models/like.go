package models

import "time"

// Like 点赞记录
// 唯一键: post_id + user_id
type Like struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:uk_post_user,priority:1" json:"postId"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:uk_post_user,priority:2" json:"userId"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

func (Like) TableName() string { return "likes" }
