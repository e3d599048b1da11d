package store

import (
	"Blog/models"
	"Blog/pkg/encrypt"
	"Blog/pkg/errs"
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Store = (*MemoryStore)(nil)

type Option func(*MemoryStore)

// WithClock 替换时间源
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// WithIDGenerator 替换用户 ID 生成器
func WithIDGenerator(gen func() string) Option {
	return func(s *MemoryStore) {
		s.newID = gen
	}
}

// MemoryStore 进程内存储，进程重启即丢失
// 写操作持写锁，读操作持读锁并返回副本
type MemoryStore struct {
	mu sync.RWMutex

	posts []*models.Post           // 插入顺序
	likes map[int64][]*models.Like // postID -> likes
	users []*models.User

	usersByID   map[string]*models.User
	usersByName map[string]*models.User

	nextPostID int64
	nextLikeID int64

	now   func() time.Time
	newID func() string
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		likes:       make(map[int64][]*models.Like),
		usersByID:   make(map[string]*models.User),
		usersByName: make(map[string]*models.User),
		nextPostID:  1,
		nextLikeID:  1,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) timestamp() time.Time {
	return s.now().UTC()
}

// ListPosts 按创建时间倒序返回文章，search 非空时按标题或正文做大小写不敏感的子串匹配
func (s *MemoryStore) ListPosts(_ context.Context, search string) ([]*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := ""
	if strings.TrimSpace(search) != "" {
		term = strings.ToLower(search)
	}

	result := make([]*models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Content), term) {
			continue
		}
		cp := ClonePost(p)
		if author, ok := s.usersByID[p.AuthorID]; ok {
			cp.Author = CloneUser(author)
			cp.AuthorName = author.UserName
		}
		result = append(result, cp)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *MemoryStore) GetPost(_ context.Context, id int64) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findPost(id)
	if p == nil {
		return nil, errs.NotFound("Post not found")
	}
	return ClonePost(p), nil
}

func (s *MemoryStore) CreatePost(_ context.Context, title, content, authorID string) (*models.Post, error) {
	if authorID == "" {
		return nil, errs.Validation("authorId", "Author is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := &models.Post{
		ID:        s.nextPostID,
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: s.timestamp(),
	}
	s.nextPostID++
	s.posts = append(s.posts, p)
	return ClonePost(p), nil
}

// UpdatePost 只替换标题和正文并记录更新时间，作者与创建时间不变
func (s *MemoryStore) UpdatePost(_ context.Context, id int64, title, content string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPost(id)
	if p == nil {
		return nil, errs.NotFound("Post not found")
	}
	now := s.timestamp()
	p.Title = title
	p.Content = content
	p.UpdatedAt = &now
	return ClonePost(p), nil
}

// DeletePost 删除文章并级联删除其点赞
func (s *MemoryStore) DeletePost(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.posts, func(p *models.Post) bool { return p.ID == id })
	if idx < 0 {
		return errs.NotFound("Post not found")
	}
	s.posts = slices.Delete(s.posts, idx, idx+1)
	delete(s.likes, id)
	return nil
}

func (s *MemoryStore) ListLikesForPost(_ context.Context, postID int64) ([]*models.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	likes := s.likes[postID]
	result := make([]*models.Like, 0, len(likes))
	for _, l := range likes {
		result = append(result, CloneLike(l))
	}
	return result, nil
}

// CreateLike 文章不存在返回 not_found，给自己的文章点赞返回 invalid_operation，重复点赞返回 conflict
func (s *MemoryStore) CreateLike(_ context.Context, postID int64, userID string) (*models.Like, error) {
	if userID == "" {
		return nil, errs.Validation("userId", "User is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPost(postID)
	if p == nil {
		return nil, errs.NotFound("Post not found")
	}
	if p.AuthorID == userID {
		return nil, errs.InvalidOperation("You cannot like your own post")
	}
	if s.findLike(postID, userID) >= 0 {
		return nil, errs.Conflict("You have already liked this post")
	}

	l := &models.Like{
		ID:        s.nextLikeID,
		PostID:    postID,
		UserID:    userID,
		CreatedAt: s.timestamp(),
	}
	s.nextLikeID++
	s.likes[postID] = append(s.likes[postID], l)
	return CloneLike(l), nil
}

func (s *MemoryStore) DeleteLike(_ context.Context, postID int64, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findLike(postID, userID)
	if idx < 0 {
		return false, nil
	}
	likes := slices.Delete(s.likes[postID], idx, idx+1)
	if len(likes) == 0 {
		delete(s.likes, postID)
	} else {
		s.likes[postID] = likes
	}
	return true, nil
}

func (s *MemoryStore) HasUserLiked(_ context.Context, postID int64, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findLike(postID, userID) >= 0, nil
}

func (s *MemoryStore) ListUsers(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		result = append(result, CloneUser(u))
	}
	return result, nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByID[id]
	if !ok {
		return nil, errs.NotFound("User not found")
	}
	return CloneUser(u), nil
}

// GetUserByName 用户名精确匹配（区分大小写）
func (s *MemoryStore) GetUserByName(_ context.Context, userName string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByName[userName]
	if !ok {
		return nil, errs.NotFound("User not found")
	}
	return CloneUser(u), nil
}

func (s *MemoryStore) UserExists(_ context.Context, userName string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.usersByName[userName]
	return ok, nil
}

func (s *MemoryStore) CreateUser(_ context.Context, userName, email, passwordHash string) (*models.User, error) {
	if userName == "" {
		return nil, errs.Validation("userName", "Username cannot be null or empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usersByName[userName]; ok {
		return nil, errs.Conflict("Username already exists")
	}

	u := &models.User{
		ID:           s.newID(),
		UserName:     userName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.timestamp(),
	}
	s.users = append(s.users, u)
	s.usersByID[u.ID] = u
	s.usersByName[u.UserName] = u
	return CloneUser(u), nil
}

// ValidatePassword 用户不存在返回 false，否则比较哈希
func (s *MemoryStore) ValidatePassword(_ context.Context, userName, candidate string) (bool, error) {
	s.mu.RLock()
	u, ok := s.usersByName[userName]
	var hash string
	if ok {
		hash = u.PasswordHash
	}
	s.mu.RUnlock()

	if !ok {
		encrypt.BurnCompare(candidate)
		return false, nil
	}
	return encrypt.VerifyPassword(hash, candidate), nil
}

func (s *MemoryStore) findPost(id int64) *models.Post {
	for _, p := range s.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *MemoryStore) findLike(postID int64, userID string) int {
	return slices.IndexFunc(s.likes[postID], func(l *models.Like) bool {
		return l.UserID == userID
	})
}
