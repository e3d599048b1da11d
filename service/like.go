package service

import (
	"Blog/models"
	"Blog/pkg/errs"
	"Blog/store"
	"context"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID string, postID int64) (*models.Like, error)
	Unlike(ctx context.Context, userID string, postID int64) error
	IsLiked(ctx context.Context, userID string, postID int64) (bool, error)
	ListLikes(ctx context.Context, postID int64) ([]*models.Like, error)
}

type LikeService struct {
	Store store.Store
}

// Like 依次校验：已登录、文章存在、不是自己的文章、尚未点赞
// 存储层会再次校验存在性和唯一性
func (s *LikeService) Like(ctx context.Context, userID string, postID int64) (*models.Like, error) {
	if userID == "" {
		return nil, errs.Unauthenticated("User not authenticated")
	}
	if postID <= 0 {
		return nil, errs.Validation("postId", "Invalid post ID")
	}

	post, err := s.Store.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID == userID {
		return nil, errs.InvalidOperation("You cannot like your own post")
	}

	liked, err := s.Store.HasUserLiked(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, errs.Conflict("You have already liked this post")
	}

	return s.Store.CreateLike(ctx, postID, userID)
}

func (s *LikeService) Unlike(ctx context.Context, userID string, postID int64) error {
	if userID == "" {
		return errs.Unauthenticated("User not authenticated")
	}
	ok, err := s.Store.DeleteLike(ctx, postID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NotFound("Like not found")
	}
	return nil
}

func (s *LikeService) IsLiked(ctx context.Context, userID string, postID int64) (bool, error) {
	if userID == "" {
		return false, errs.Unauthenticated("User not authenticated")
	}
	return s.Store.HasUserLiked(ctx, postID, userID)
}

func (s *LikeService) ListLikes(ctx context.Context, postID int64) ([]*models.Like, error) {
	return s.Store.ListLikesForPost(ctx, postID)
}
