package dao

import (
	"Blog/models"
	"context"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

func (d *LikeDAO) ListByPost(ctx context.Context, postID int64) ([]*models.Like, error) {
	return d.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("post_id = ?", postID).Order("id ASC")
	})
}

// IsLiked 用户是否已点赞
func (d *LikeDAO) IsLiked(ctx context.Context, postID int64, userID string) (bool, error) {
	return d.IsExist(ctx, "post_id = ? AND user_id = ?", postID, userID)
}

// DeleteByPostUser 返回是否删除了记录
func (d *LikeDAO) DeleteByPostUser(ctx context.Context, postID int64, userID string) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
