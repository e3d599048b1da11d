package handler

import (
	"Blog/middleware"
	"Blog/pkg/context"
	"Blog/pkg/response"
	"Blog/pkg/utils"
	"Blog/service"
	"Blog/types"

	"github.com/gin-gonic/gin"
)

type Like struct {
	AuthService service.IAuthService
	LikeService service.ILikeService
}

func (l *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(l.AuthService)
	g := r.Group("/likes/post/:postId")
	g.GET("", context.Wrap(l.List))
	g.POST("", authorize, context.Wrap(l.Like))
	g.DELETE("", authorize, context.Wrap(l.Unlike))
	g.GET("/status", authorize, context.Wrap(l.Status))
}

func (l *Like) List(c *gin.Context) error {
	id, err := postID(c, "postId")
	if err != nil {
		return err
	}
	likes, err := l.LikeService.ListLikes(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, utils.ToLikeItems(likes))
	return nil
}

func (l *Like) Like(c *gin.Context) error {
	id, err := postID(c, "postId")
	if err != nil {
		return err
	}
	if _, err := l.LikeService.Like(c.Request.Context(), context.GetUserID(c), id); err != nil {
		return err
	}
	response.Message(c, "Post liked successfully")
	return nil
}

func (l *Like) Unlike(c *gin.Context) error {
	id, err := postID(c, "postId")
	if err != nil {
		return err
	}
	if err := l.LikeService.Unlike(c.Request.Context(), context.GetUserID(c), id); err != nil {
		return err
	}
	response.Message(c, "Post unliked successfully")
	return nil
}

func (l *Like) Status(c *gin.Context) error {
	id, err := postID(c, "postId")
	if err != nil {
		return err
	}
	liked, err := l.LikeService.IsLiked(c.Request.Context(), context.GetUserID(c), id)
	if err != nil {
		return err
	}
	response.Success(c, types.LikeStatusResponse{HasLiked: liked})
	return nil
}
