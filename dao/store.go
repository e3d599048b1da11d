package dao

import (
	"Blog/models"
	"Blog/pkg/encrypt"
	"Blog/pkg/errs"
	"Blog/store"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ store.Store = (*Store)(nil)

// Store 基于 gorm 的持久化实现，语义与 store.MemoryStore 一致
type Store struct {
	db    *gorm.DB
	Users *Users
	Posts *PostDAO
	Likes *LikeDAO

	now func() time.Time
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:    db,
		Users: NewUsers(db),
		Posts: NewPostDAO(db),
		Likes: NewLikeDAO(db),
		now:   time.Now,
	}
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

func (s *Store) ListPosts(ctx context.Context, search string) ([]*models.Post, error) {
	posts, err := s.Posts.Search(ctx, search)
	if err != nil {
		return nil, errs.Internal(err.Error())
	}

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.AuthorID)
	}
	authors, err := s.Users.FindByIds(ctx, ids)
	if err != nil {
		return nil, errs.Internal(err.Error())
	}
	for _, p := range posts {
		normalizePost(p)
		if author, ok := authors[p.AuthorID]; ok {
			p.Author = author
			p.AuthorName = author.UserName
		}
	}
	return posts, nil
}

func (s *Store) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	p, err := s.Posts.FindById(ctx, id)
	if err != nil {
		return nil, postErr(err)
	}
	normalizePost(p)
	return p, nil
}

func (s *Store) CreatePost(ctx context.Context, title, content, authorID string) (*models.Post, error) {
	if authorID == "" {
		return nil, errs.Validation("authorId", "Author is required")
	}
	p := &models.Post{
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: s.timestamp(),
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, errs.Internal(err.Error())
	}
	return p, nil
}

func (s *Store) UpdatePost(ctx context.Context, id int64, title, content string) (*models.Post, error) {
	var updated *models.Post
	err := s.Posts.Transaction(ctx, func(tx *gorm.DB) error {
		var p models.Post
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return err
		}
		now := s.timestamp()
		p.Title = title
		p.Content = content
		p.UpdatedAt = &now
		if err := s.Posts.UpdateContent(ctx, tx, &p); err != nil {
			return err
		}
		updated = &p
		return nil
	})
	if err != nil {
		return nil, postErr(err)
	}
	normalizePost(updated)
	return updated, nil
}

// DeletePost 同一事务内先删点赞再删文章
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	err := s.Posts.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return postErr(err)
	}
	return nil
}

func (s *Store) ListLikesForPost(ctx context.Context, postID int64) ([]*models.Like, error) {
	likes, err := s.Likes.ListByPost(ctx, postID)
	if err != nil {
		return nil, errs.Internal(err.Error())
	}
	for _, l := range likes {
		l.CreatedAt = l.CreatedAt.UTC()
	}
	return likes, nil
}

// CreateLike 唯一索引 uk_post_user 兜底并发重复点赞
func (s *Store) CreateLike(ctx context.Context, postID int64, userID string) (*models.Like, error) {
	if userID == "" {
		return nil, errs.Validation("userId", "User is required")
	}

	var like *models.Like
	err := s.Likes.Transaction(ctx, func(tx *gorm.DB) error {
		var p models.Post
		if err := tx.Select("id", "author_id").First(&p, "id = ?", postID).Error; err != nil {
			return postErr(err)
		}
		if p.AuthorID == userID {
			return errs.InvalidOperation("You cannot like your own post")
		}

		var count int64
		if err := tx.Model(&models.Like{}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.Conflict("You have already liked this post")
		}

		like = &models.Like{PostID: postID, UserID: userID, CreatedAt: s.timestamp()}
		return tx.Create(like).Error
	})
	switch {
	case err == nil:
		return like, nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, errs.Conflict("You have already liked this post")
	case errs.CodeOf(err) != errs.CodeInternal:
		return nil, err
	default:
		return nil, errs.Internal(err.Error())
	}
}

func (s *Store) DeleteLike(ctx context.Context, postID int64, userID string) (bool, error) {
	ok, err := s.Likes.DeleteByPostUser(ctx, postID, userID)
	if err != nil {
		return false, errs.Internal(err.Error())
	}
	return ok, nil
}

func (s *Store) HasUserLiked(ctx context.Context, postID int64, userID string) (bool, error) {
	ok, err := s.Likes.IsLiked(ctx, postID, userID)
	if err != nil {
		return false, errs.Internal(err.Error())
	}
	return ok, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.Users.ListAll(ctx)
	if err != nil {
		return nil, errs.Internal(err.Error())
	}
	return users, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Users.FindById(ctx, id)
	if err != nil {
		return nil, userErr(err)
	}
	return u, nil
}

func (s *Store) GetUserByName(ctx context.Context, userName string) (*models.User, error) {
	u, err := s.Users.FindByUserName(ctx, userName)
	if err != nil {
		return nil, userErr(err)
	}
	return u, nil
}

func (s *Store) UserExists(ctx context.Context, userName string) (bool, error) {
	ok, err := s.Users.IsUserNameExist(ctx, userName)
	if err != nil {
		return false, errs.Internal(err.Error())
	}
	return ok, nil
}

func (s *Store) CreateUser(ctx context.Context, userName, email, passwordHash string) (*models.User, error) {
	if userName == "" {
		return nil, errs.Validation("userName", "Username cannot be null or empty")
	}
	u := &models.User{
		ID:           uuid.NewString(),
		UserName:     userName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.timestamp(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflict("Username already exists")
		}
		return nil, errs.Internal(err.Error())
	}
	return u, nil
}

func (s *Store) ValidatePassword(ctx context.Context, userName, candidate string) (bool, error) {
	u, err := s.Users.FindByUserName(ctx, userName)
	if err != nil {
		if IsNotFound(err) {
			encrypt.BurnCompare(candidate)
			return false, nil
		}
		return false, errs.Internal(err.Error())
	}
	return encrypt.VerifyPassword(u.PasswordHash, candidate), nil
}

func normalizePost(p *models.Post) {
	p.CreatedAt = p.CreatedAt.UTC()
	if p.UpdatedAt != nil {
		t := p.UpdatedAt.UTC()
		p.UpdatedAt = &t
	}
}

func postErr(err error) error {
	if IsNotFound(err) {
		return errs.NotFound("Post not found")
	}
	if errs.CodeOf(err) != errs.CodeInternal {
		return err
	}
	return errs.Internal(err.Error())
}

func userErr(err error) error {
	if IsNotFound(err) {
		return errs.NotFound("User not found")
	}
	return errs.Internal(err.Error())
}
