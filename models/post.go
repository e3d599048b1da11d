package models

import "time"

// Post 文章
// UpdatedAt 在首次更新前为 nil
type Post struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string     `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Content   string     `gorm:"column:content;type:text;not null" json:"content"`
	AuthorID  string     `gorm:"column:author_id;type:varchar(36);not null;index:idx_author_id" json:"authorId"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;index:idx_created_at" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updatedAt"`

	// 列表查询时解析出的作者
	Author     *User  `gorm:"-" json:"author,omitempty"`
	AuthorName string `gorm:"-" json:"authorName,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}
