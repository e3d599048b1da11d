package utils

import (
	"Blog/models"
	"Blog/service"
	"Blog/types"
)

func ToUserSummary(u *models.User) types.UserSummary {
	return types.UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		UserName: u.UserName,
	}
}

func ToAuthResponse(res *service.AuthResult) types.AuthResponse {
	return types.AuthResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      ToUserSummary(res.User),
	}
}

func ToLikeItems(likes []*models.Like) []types.LikeItem {
	items := make([]types.LikeItem, 0, len(likes))
	for _, l := range likes {
		items = append(items, types.LikeItem{
			ID:        l.ID,
			PostID:    l.PostID,
			UserID:    l.UserID,
			CreatedAt: l.CreatedAt,
		})
	}
	return items
}

// ToPostItem 附带点赞列表和点赞数
func ToPostItem(p *models.Post, likes []*models.Like) types.PostItem {
	item := types.PostItem{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		Likes:      ToLikeItems(likes),
		LikesCount: len(likes),
	}
	if p.Author != nil {
		author := ToUserSummary(p.Author)
		item.Author = &author
	}
	return item
}

func ToPostItems(details []*service.PostDetail) []types.PostItem {
	items := make([]types.PostItem, 0, len(details))
	for _, d := range details {
		items = append(items, ToPostItem(d.Post, d.Likes))
	}
	return items
}
