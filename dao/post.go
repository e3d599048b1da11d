package dao

import (
	"Blog/models"
	"context"
	"strings"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// 模糊查询中的通配符用 ! 转义
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Search 标题或正文包含 term（忽略大小写），按创建时间倒序
func (d *PostDAO) Search(ctx context.Context, term string) ([]*models.Post, error) {
	return d.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(term) != "" {
			pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
			db = db.Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(content) LIKE ? ESCAPE '!'", pattern, pattern)
		}
		return db.Order("created_at DESC").Order("id DESC")
	})
}

// UpdateContent 只更新标题、正文和更新时间
func (d *PostDAO) UpdateContent(ctx context.Context, tx *gorm.DB, post *models.Post) error {
	return tx.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":      post.Title,
			"content":    post.Content,
			"updated_at": post.UpdatedAt,
		}).Error
}
