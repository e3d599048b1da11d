package store

import (
	"Blog/models"
	"context"
)

// Store 数据层能力边界：文章、点赞、用户三个集合的全部读写
//
// 所有实现都必须保证：
//   - 每个操作对外原子，不暴露中间状态
//   - 同一 (postID, userID) 至多一条点赞
//   - 删除文章时一并删除其全部点赞
//   - 文章与点赞的 ID 单调递增且不复用
type Store interface {
	ListPosts(ctx context.Context, search string) ([]*models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, title, content, authorID string) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, title, content string) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error

	ListLikesForPost(ctx context.Context, postID int64) ([]*models.Like, error)
	CreateLike(ctx context.Context, postID int64, userID string) (*models.Like, error)
	DeleteLike(ctx context.Context, postID int64, userID string) (bool, error)
	HasUserLiked(ctx context.Context, postID int64, userID string) (bool, error)

	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByName(ctx context.Context, userName string) (*models.User, error)
	UserExists(ctx context.Context, userName string) (bool, error)
	CreateUser(ctx context.Context, userName, email, passwordHash string) (*models.User, error)
	ValidatePassword(ctx context.Context, userName, candidate string) (bool, error)
}

// ClonePost 返回独立副本，调用方修改不会影响存储
func ClonePost(p *models.Post) *models.Post {
	if p == nil {
		return nil
	}
	cp := *p
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		cp.UpdatedAt = &t
	}
	if p.Author != nil {
		cp.Author = CloneUser(p.Author)
	}
	return &cp
}

func CloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func CloneLike(l *models.Like) *models.Like {
	if l == nil {
		return nil
	}
	cp := *l
	return &cp
}
