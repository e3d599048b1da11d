package handler

import (
	"Blog/middleware"
	"Blog/pkg/context"
	"Blog/pkg/errs"
	"Blog/pkg/response"
	"Blog/pkg/utils"
	"Blog/service"
	"Blog/types"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Post struct {
	AuthService service.IAuthService
	PostService service.IPostService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(p.AuthService)
	g := r.Group("/posts")
	g.GET("", context.Wrap(p.List))
	g.GET("/:id", context.Wrap(p.Get))
	g.POST("", authorize, context.Wrap(p.Create))
	g.PUT("/:id", authorize, context.Wrap(p.Update))
	g.DELETE("/:id", authorize, context.Wrap(p.Delete))
}

func (p *Post) List(c *gin.Context) error {
	items, err := p.PostService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		return err
	}
	response.Success(c, utils.ToPostItems(items))
	return nil
}

func (p *Post) Get(c *gin.Context) error {
	id, err := postID(c, "id")
	if err != nil {
		return err
	}
	detail, err := p.PostService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, utils.ToPostItem(detail.Post, detail.Likes))
	return nil
}

func (p *Post) Create(c *gin.Context) error {
	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("body", "Invalid model")
	}

	post, err := p.PostService.Create(c.Request.Context(), &service.CreatePostOpt{
		UserID:  context.GetUserID(c),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	c.Header("Location", "/api/posts/"+strconv.FormatInt(post.ID, 10))
	response.Created(c, utils.ToPostItem(post, nil))
	return nil
}

func (p *Post) Update(c *gin.Context) error {
	id, err := postID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("body", "Invalid model")
	}

	post, err := p.PostService.Update(c.Request.Context(), &service.UpdatePostOpt{
		UserID:  context.GetUserID(c),
		ID:      id,
		BodyID:  req.ID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	detail, err := p.PostService.Get(c.Request.Context(), post.ID)
	if err != nil {
		return err
	}
	response.Success(c, utils.ToPostItem(detail.Post, detail.Likes))
	return nil
}

func (p *Post) Delete(c *gin.Context) error {
	id, err := postID(c, "id")
	if err != nil {
		return err
	}
	if err := p.PostService.Delete(c.Request.Context(), context.GetUserID(c), id); err != nil {
		return err
	}
	response.Message(c, "Post deleted successfully")
	return nil
}

func postID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errs.Validation(name, "Invalid post ID")
	}
	return id, nil
}
