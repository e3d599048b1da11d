package handler

import (
	"Blog/middleware"
	"Blog/pkg/context"
	"Blog/pkg/errs"
	"Blog/pkg/response"
	"Blog/pkg/utils"
	"Blog/service"
	"Blog/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(u.AuthService)
	g := r.Group("/auth")
	g.POST("/register", context.Wrap(u.Register))
	g.POST("/login", context.Wrap(u.Login))
	g.POST("/logout", authorize, context.Wrap(u.Logout))
	g.GET("/me", context.Wrap(u.Me))
}

func (u *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("body", "Invalid model")
	}

	res, err := u.AuthService.Register(c.Request.Context(), &service.RegisterOpt{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	response.Success(c, utils.ToAuthResponse(res))
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("body", "Invalid model")
	}

	res, err := u.AuthService.Login(c.Request.Context(), &service.LoginOpt{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	response.Success(c, utils.ToAuthResponse(res))
	return nil
}

func (u *Auth) Logout(c *gin.Context) error {
	if err := u.AuthService.Logout(c.Request.Context(), context.GetClaims(c)); err != nil {
		return err
	}
	response.Message(c, "Logged out successfully")
	return nil
}

// Me 当前登录用户
func (u *Auth) Me(c *gin.Context) error {
	user, err := u.AuthService.CurrentUser(c.Request.Context(), middleware.BearerToken(c))
	if err != nil {
		return err
	}
	response.Success(c, utils.ToUserSummary(user))
	return nil
}
