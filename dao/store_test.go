package dao_test

import (
	"Blog/dao"
	"Blog/pkg/database"
	"Blog/pkg/errs"
	"Blog/store"
	"Blog/store/storetest"
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// 每个用例独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:blog_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func TestStoreConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return dao.NewStore(newTestDB(t))
	})
}

func TestStoreDeletedPostIDNotReused(t *testing.T) {
	ctx := context.Background()
	s := dao.NewStore(newTestDB(t))
	u, err := s.CreateUser(ctx, "alice", "alice@test.com", "hash")
	require.NoError(t, err)

	first, err := s.CreatePost(ctx, "first", "content", u.ID)
	require.NoError(t, err)
	second, err := s.CreatePost(ctx, "second", "content", u.ID)
	require.NoError(t, err)
	require.NoError(t, s.DeletePost(ctx, second.ID))

	third, err := s.CreatePost(ctx, "third", "content", u.ID)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
	assert.Greater(t, third.ID, second.ID)
}

func TestStoreSearchEscapesWildcards(t *testing.T) {
	ctx := context.Background()
	s := dao.NewStore(newTestDB(t))
	u, err := s.CreateUser(ctx, "alice", "alice@test.com", "hash")
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, "100% Go", "content", u.ID)
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, "snake_case", "content", u.ID)
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, "plain", "content", u.ID)
	require.NoError(t, err)

	posts, err := s.ListPosts(ctx, "0%")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "100% Go", posts[0].Title)

	posts, err = s.ListPosts(ctx, "_")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "snake_case", posts[0].Title)
}

func TestStoreConcurrentLikes(t *testing.T) {
	ctx := context.Background()
	s := dao.NewStore(newTestDB(t))
	author, err := s.CreateUser(ctx, "author", "author@test.com", "hash")
	require.NoError(t, err)
	fan, err := s.CreateUser(ctx, "fan", "fan@test.com", "hash")
	require.NoError(t, err)
	p, err := s.CreatePost(ctx, "popular", "content", author.ID)
	require.NoError(t, err)

	var created atomic.Int32
	var wg conc.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Go(func() {
			_, err := s.CreateLike(ctx, p.ID, fan.ID)
			if err == nil {
				created.Add(1)
				return
			}
			assert.ErrorIs(t, err, errs.ErrConflict)
		})
	}
	wg.Wait()

	assert.EqualValues(t, 1, created.Load())
	likes, err := s.ListLikesForPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)
}
