package dao

import (
	"Blog/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUserName 用户名精确查询，区分大小写
func (u *Users) FindByUserName(ctx context.Context, userName string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "user_name = ?", userName)
}

// IsUserNameExist 判断用户名是否存在
func (u *Users) IsUserNameExist(ctx context.Context, userName string) (bool, error) {
	return u.Repo.IsExist(ctx, "user_name = ?", userName)
}

// FindByIds 批量查询，返回 id -> user
func (u *Users) FindByIds(ctx context.Context, ids []string) (map[string]*models.User, error) {
	result := make(map[string]*models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var items []*models.User
	if err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, item := range items {
		result[item.ID] = item
	}
	return result, nil
}

func (u *Users) ListAll(ctx context.Context) ([]*models.User, error) {
	return u.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	})
}
