package store

import (
	"Blog/pkg/encrypt"
	"context"
	"fmt"
)

type seedPost struct {
	author  int
	title   string
	content string
}

var (
	seedUsers = []string{"johndoe", "janesmith"}

	// 按创建顺序，最后一篇最新
	seedPosts = []seedPost{
		{0, "Welcome to the Blog", "This is the first post on our blog. We're excited to share our thoughts and ideas with you!"},
		{1, "Getting Started with Go", "Today we're going to explore the basics of Go development and best practices for building robust applications."},
		{0, "Modern Web Development", "Web development has evolved significantly. Let's discuss the latest trends and technologies that are shaping the industry."},
	}

	// postIndex -> userIndex
	seedLikes = [][2]int{{0, 1}, {1, 0}}
)

const seedPassword = "password123"

// Seed 写入示例数据，用户已存在时跳过
func Seed(ctx context.Context, s Store) error {
	exists, err := s.UserExists(ctx, seedUsers[0])
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := encrypt.HashPassword(seedPassword)
	if err != nil {
		return err
	}

	userIDs := make([]string, 0, len(seedUsers))
	for _, name := range seedUsers {
		u, err := s.CreateUser(ctx, name, name+"@test.com", hash)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", name, err)
		}
		userIDs = append(userIDs, u.ID)
	}

	postIDs := make([]int64, 0, len(seedPosts))
	for _, sp := range seedPosts {
		p, err := s.CreatePost(ctx, sp.title, sp.content, userIDs[sp.author])
		if err != nil {
			return fmt.Errorf("seed post %q: %w", sp.title, err)
		}
		postIDs = append(postIDs, p.ID)
	}

	for _, sl := range seedLikes {
		if _, err := s.CreateLike(ctx, postIDs[sl[0]], userIDs[sl[1]]); err != nil {
			return fmt.Errorf("seed like: %w", err)
		}
	}
	return nil
}
