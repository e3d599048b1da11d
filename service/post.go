package service

import (
	"Blog/models"
	"Blog/pkg/errs"
	"Blog/store"
	"context"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	List(ctx context.Context, search string) ([]*PostDetail, error)
	Get(ctx context.Context, id int64) (*PostDetail, error)
	Create(ctx context.Context, opt *CreatePostOpt) (*models.Post, error)
	Update(ctx context.Context, opt *UpdatePostOpt) (*models.Post, error)
	Delete(ctx context.Context, userID string, id int64) error
}

// PostDetail 文章及其点赞列表
type PostDetail struct {
	Post  *models.Post
	Likes []*models.Like
}

type CreatePostOpt struct {
	UserID  string
	Title   string
	Content string
}

type UpdatePostOpt struct {
	UserID  string
	ID      int64
	BodyID  int64 // 请求体中的 id，0 表示未携带
	Title   string
	Content string
}

type PostService struct {
	Store store.Store
}

func (s *PostService) List(ctx context.Context, search string) ([]*PostDetail, error) {
	posts, err := s.Store.ListPosts(ctx, search)
	if err != nil {
		return nil, err
	}

	items := make([]*PostDetail, 0, len(posts))
	for _, p := range posts {
		likes, err := s.Store.ListLikesForPost(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, &PostDetail{Post: p, Likes: likes})
	}
	return items, nil
}

func (s *PostService) Get(ctx context.Context, id int64) (*PostDetail, error) {
	p, err := s.Store.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	s.attachAuthor(ctx, p)

	likes, err := s.Store.ListLikesForPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: p, Likes: likes}, nil
}

func (s *PostService) Create(ctx context.Context, opt *CreatePostOpt) (*models.Post, error) {
	if opt.UserID == "" {
		return nil, errs.Unauthenticated("User not authenticated")
	}
	if err := validatePostInput(opt.Title, opt.Content); err != nil {
		return nil, err
	}

	p, err := s.Store.CreatePost(ctx, opt.Title, opt.Content, opt.UserID)
	if err != nil {
		return nil, err
	}
	s.attachAuthor(ctx, p)
	return p, nil
}

// Update 只有作者本人可以修改
func (s *PostService) Update(ctx context.Context, opt *UpdatePostOpt) (*models.Post, error) {
	if opt.BodyID != 0 && opt.BodyID != opt.ID {
		return nil, errs.Validation("id", "Post id in body does not match the url")
	}
	if err := validatePostInput(opt.Title, opt.Content); err != nil {
		return nil, err
	}
	if _, err := s.ownedPost(ctx, opt.UserID, opt.ID); err != nil {
		return nil, err
	}

	p, err := s.Store.UpdatePost(ctx, opt.ID, opt.Title, opt.Content)
	if err != nil {
		return nil, err
	}
	s.attachAuthor(ctx, p)
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, userID string, id int64) error {
	if _, err := s.ownedPost(ctx, userID, id); err != nil {
		return err
	}
	return s.Store.DeletePost(ctx, id)
}

func (s *PostService) ownedPost(ctx context.Context, userID string, id int64) (*models.Post, error) {
	if userID == "" {
		return nil, errs.Unauthenticated("User not authenticated")
	}
	p, err := s.Store.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != userID {
		return nil, errs.Forbidden("You can only modify your own posts")
	}
	return p, nil
}

// attachAuthor 作者已不存在时保持为空
func (s *PostService) attachAuthor(ctx context.Context, p *models.Post) {
	if p.Author != nil {
		return
	}
	if u, err := s.Store.GetUserByID(ctx, p.AuthorID); err == nil {
		p.Author = u
		p.AuthorName = u.UserName
	}
}
