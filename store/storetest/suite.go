// Package storetest 对任意 store.Store 实现运行同一组行为测试
package storetest

import (
	"Blog/pkg/encrypt"
	"Blog/pkg/errs"
	"Blog/store"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Factory func(t *testing.T) store.Store

func Run(t *testing.T, newStore Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s store.Store)
	}{
		{"CreateThenGetPost", testCreateThenGetPost},
		{"PostIDsIncrease", testPostIDsIncrease},
		{"GetPostNotFound", testGetPostNotFound},
		{"UpdatePost", testUpdatePost},
		{"UpdatePostNotFound", testUpdatePostNotFound},
		{"DeletePostCascadesLikes", testDeletePostCascadesLikes},
		{"DeletePostNotFound", testDeletePostNotFound},
		{"ListPostsSearch", testListPostsSearch},
		{"ListPostsNewestFirst", testListPostsNewestFirst},
		{"ListPostsResolvesAuthor", testListPostsResolvesAuthor},
		{"DuplicateLikeRejected", testDuplicateLikeRejected},
		{"LikeMissingPost", testLikeMissingPost},
		{"SelfLikeRejected", testSelfLikeRejected},
		{"DeleteLike", testDeleteLike},
		{"Users", testUsers},
		{"DuplicateUserName", testDuplicateUserName},
		{"ValidatePassword", testValidatePassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

const content = "Some content long enough"

func mustUser(t *testing.T, s store.Store, name string) string {
	t.Helper()
	u, err := s.CreateUser(context.Background(), name, name+"@test.com", "hash")
	require.NoError(t, err)
	return u.ID
}

func testCreateThenGetPost(t *testing.T, s store.Store) {
	ctx := context.Background()
	author := mustUser(t, s, "alice")

	created, err := s.CreatePost(ctx, "Hello World", content, author)
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Nil(t, created.UpdatedAt)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", got.Title)
	assert.Equal(t, content, got.Content)
	assert.Equal(t, author, got.AuthorID)
	assert.Nil(t, got.UpdatedAt)
}

func testPostIDsIncrease(t *testing.T, s store.Store) {
	ctx := context.Background()
	author := mustUser(t, s, "alice")

	first, err := s.CreatePost(ctx, "First", content, author)
	require.NoError(t, err)
	second, err := s.CreatePost(ctx, "Second", content, author)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func testGetPostNotFound(t *testing.T, s store.Store) {
	_, err := s.GetPost(context.Background(), 999)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func testUpdatePost(t *testing.T, s store.Store) {
	ctx := context.Background()
	author := mustUser(t, s, "alice")
	created, err := s.CreatePost(ctx, "Hello World", content, author)
	require.NoError(t, err)

	updated, err := s.UpdatePost(ctx, created.ID, "New title", "New content here")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "New content here", updated.Content)
	assert.Equal(t, author, updated.AuthorID)
	require.NotNil(t, updated.UpdatedAt)

	got, err := s.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, author, got.AuthorID)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Millisecond)
	require.NotNil(t, got.UpdatedAt)
}

func testUpdatePostNotFound(t *testing.T, s store.Store) {
	_, err := s.UpdatePost(context.Background(), 42, "Title", content)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func testDeletePostCascadesLikes(t *testing.T, s store.Store) {
	ctx := context.Background()
	author := mustUser(t, s, "alice")
	fan := mustUser(t, s, "bob")
	other := mustUser(t, s, "carol")

	p, err := s.CreatePost(ctx, "Hello World", content, author)
	require.NoError(t, err)
	keep, err := s.CreatePost(ctx, "Keep me", content, author)
	require.NoError(t, err)

	_, err = s.CreateLike(ctx, p.ID, fan)
	require.NoError(t, err)
	_, err = s.CreateLike(ctx, p.ID, other)
	require.NoError(t, err)
	_, err = s.CreateLike(ctx, keep.ID, fan)
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(ctx, p.ID))

	_, err = s.GetPost(ctx, p.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	likes, err := s.ListLikesForPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)

	liked, err := s.HasUserLiked(ctx, p.ID, fan)
	require.NoError(t, err)
	assert.False(t, liked)

	kept, err := s.ListLikesForPost(ctx, keep.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func testDeletePostNotFound(t *testing.T, s store.Store) {
	assert.ErrorIs(t, s.DeletePost(context.Background(), 7), errs.ErrNotFound)
}

func testListPostsSearch(t *testing.T, s store.Store) {
	ctx := context.Background()
	author := mustUser(t, s, "alice")
	_, err := s.CreatePost(ctx, "Welcome to the Blog", "This is the first post on our blog.", author)
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, "Modern Web Development", "Trends shaping the INDUSTRY today.", author)
	require.NoError(t, err)

	all, err := s.ListPosts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	blank, err := s.ListPosts(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, blank, 2)

	byTitle, err := s.ListPosts(ctx, "WELCOME")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Welcome to the Blog", byTitle[0].Title)

	byContent, err := s.ListPosts(ctx, "industry")
	require.NoError(t, err)
	require.Len(t, byContent, 1)
	assert.Equal(t, "Modern Web Development", byContent[0].Title)

	none, err := s.ListPosts(ctx, "golang")
	require.NoError(t, err)
	assert.Empty(t, none)

	wildcard, err := s.ListPosts(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, wildcard)
}

func testListPostsNewestFirst(t *testing.T, s store.Store) {
	ctx := context.Background()
	author := mustUser(t, s, "alice")

	titles := []string{"Oldest post", "Middle post", "Newest post"}
	for _, title := range titles {
		_, err := s.CreatePost(ctx, title, content, author)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	posts, err := s.ListPosts(ctx, "")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "Newest post", posts[0].Title)
	assert.Equal(t, "Middle post", posts[1].Title)
	assert.Equal(t, "Oldest post", posts[2].Title)
}

func testListPostsResolvesAuthor(t *testing.T, s store.Store) {
	ctx := context.Background()
	author := mustUser(t, s, "alice")
	_, err := s.CreatePost(ctx, "By alice", content, author)
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, "By ghost", content, "missing-user")
	require.NoError(t, err)

	posts, err := s.ListPosts(ctx, "")
	require.NoError(t, err)
	require.Len(t, posts, 2)

	byTitle := map[string]int{}
	for i, p := range posts {
		byTitle[p.Title] = i
	}
	alice := posts[byTitle["By alice"]]
	require.NotNil(t, alice.Author)
	assert.Equal(t, author, alice.Author.ID)
	assert.Equal(t, "alice", alice.AuthorName)

	ghost := posts[byTitle["By ghost"]]
	assert.Nil(t, ghost.Author)
	assert.Empty(t, ghost.AuthorName)
}

func testDuplicateLikeRejected(t *testing.T, s store.Store) {
	ctx := context.Background()
	author := mustUser(t, s, "alice")
	fan := mustUser(t, s, "bob")
	p, err := s.CreatePost(ctx, "Hello World", content, author)
	require.NoError(t, err)

	liked, err := s.HasUserLiked(ctx, p.ID, fan)
	require.NoError(t, err)
	assert.False(t, liked)

	like, err := s.CreateLike(ctx, p.ID, fan)
	require.NoError(t, err)
	assert.Positive(t, like.ID)
	assert.Equal(t, p.ID, like.PostID)
	assert.Equal(t, fan, like.UserID)

	liked, err = s.HasUserLiked(ctx, p.ID, fan)
	require.NoError(t, err)
	assert.True(t, liked)

	_, err = s.CreateLike(ctx, p.ID, fan)
	assert.ErrorIs(t, err, errs.ErrConflict)

	likes, err := s.ListLikesForPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)
}

func testLikeMissingPost(t *testing.T, s store.Store) {
	fan := mustUser(t, s, "bob")
	_, err := s.CreateLike(context.Background(), 404, fan)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func testSelfLikeRejected(t *testing.T, s store.Store) {
	ctx := context.Background()
	author := mustUser(t, s, "alice")
	p, err := s.CreatePost(ctx, "Hello World", content, author)
	require.NoError(t, err)

	_, err = s.CreateLike(ctx, p.ID, author)
	assert.ErrorIs(t, err, errs.ErrInvalidOperation)

	likes, err := s.ListLikesForPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func testDeleteLike(t *testing.T, s store.Store) {
	ctx := context.Background()
	author := mustUser(t, s, "alice")
	fan := mustUser(t, s, "bob")
	p, err := s.CreatePost(ctx, "Hello World", content, author)
	require.NoError(t, err)

	_, err = s.CreateLike(ctx, p.ID, fan)
	require.NoError(t, err)

	removed, err := s.DeleteLike(ctx, p.ID, fan)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.DeleteLike(ctx, p.ID, fan)
	require.NoError(t, err)
	assert.False(t, removed)

	// 取消后可以再次点赞
	_, err = s.CreateLike(ctx, p.ID, fan)
	assert.NoError(t, err)
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()
	u, err := s.CreateUser(ctx, "JohnDoe", "JohnDoe@test.com", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	byID, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "JohnDoe", byID.UserName)
	assert.Equal(t, "JohnDoe@test.com", byID.Email)

	byName, err := s.GetUserByName(ctx, "JohnDoe")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = s.GetUserByName(ctx, "johndoe")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = s.GetUserByID(ctx, "nope")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	exists, err := s.UserExists(ctx, "JohnDoe")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = s.UserExists(ctx, "JOHNDOE")
	require.NoError(t, err)
	assert.False(t, exists)

	other, err := s.CreateUser(ctx, "janesmith", "janesmith@test.com", "hash")
	require.NoError(t, err)
	assert.NotEqual(t, u.ID, other.ID)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func testDuplicateUserName(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "alice")
	_, err := s.CreateUser(ctx, "alice", "other@test.com", "hash")
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func testValidatePassword(t *testing.T, s store.Store) {
	ctx := context.Background()
	hash, err := encrypt.HashPassword("secret")
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, "alice", "alice@test.com", hash)
	require.NoError(t, err)

	ok, err := s.ValidatePassword(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.ValidatePassword(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.ValidatePassword(ctx, "nobody", "secret")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.ValidatePassword(ctx, strings.ToUpper("alice"), "secret")
	require.NoError(t, err)
	assert.False(t, ok)
}
