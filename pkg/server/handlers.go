package server

import (
	"Blog/handler"
)

type Handlers struct {
	Auth   *handler.Auth
	Post   *handler.Post
	Like   *handler.Like
	Health *handler.Health
}
