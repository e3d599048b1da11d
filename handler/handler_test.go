package handler_test

import (
	"Blog/config"
	"Blog/dao/cache"
	"Blog/handler"
	"Blog/pkg/server"
	"Blog/service"
	"Blog/store"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type envelope struct {
	Code   int             `json:"code"`
	Reason string          `json:"reason"`
	Field  string          `json:"field"`
	Msg    string          `json:"msg"`
	Data   json.RawMessage `json:"data"`
}

type testApp struct {
	engine *gin.Engine
	store  *store.MemoryStore
}

func newTestApp(t *testing.T, revocation string) *testApp {
	t.Helper()
	conf := &config.Config{
		App:    &config.App{Env: "test"},
		Server: &config.Server{Http: 0},
		Jwt: &config.Jwt{
			Secret:     "handler-test-secret-key-at-least-32b",
			Issuer:     "BlogApi",
			Audience:   "BlogApp",
			ExpiresIn:  3600,
			Revocation: revocation,
		},
		Store: &config.Store{Driver: config.StoreMemory},
	}
	s := store.NewMemoryStore()
	tokens, cleanup, err := cache.NewTokenStore(conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	authService := &service.AuthService{Store: s, Tokens: tokens, Conf: conf}
	h := &server.Handlers{
		Auth:   &handler.Auth{AuthService: authService},
		Post:   &handler.Post{AuthService: authService, PostService: &service.PostService{Store: s}},
		Like:   &handler.Like{AuthService: authService, LikeService: &service.LikeService{Store: s}},
		Health: &handler.Health{},
	}
	return &testApp{engine: server.NewGinEngine(conf, h), store: s}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func (a *testApp) register(t *testing.T, name string) (token, id string) {
	t.Helper()
	w, env := a.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"userName": name,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var data struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.Token, data.User.ID
}

func (a *testApp) createPost(t *testing.T, token, title string) int64 {
	t.Helper()
	w, env := a.do(t, http.MethodPost, "/api/posts", token, map[string]string{
		"title":   title,
		"content": "Content that is long enough",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var data struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.ID
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, config.RevocationNone)
	w, _ := app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRegisterAndLogin(t *testing.T) {
	app := newTestApp(t, config.RevocationNone)
	token, id := app.register(t, "alice")
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, id)

	w, env := app.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"userName": "alice", "password": "pwd"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", env.Reason)

	w, env = app.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"userName": "a!", "password": "pwd"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "userName", env.Field)
	assert.Equal(t, "Username can only contain letters and digits", env.Msg)

	w, env = app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"userName": "alice", "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"userName":"alice"`)
	assert.Contains(t, string(env.Data), `"expiresAt"`)

	w1, wrong := app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"userName": "alice", "password": "nope"})
	w2, unknown := app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"userName": "bob", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w1.Code)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.Equal(t, wrong.Msg, unknown.Msg)
}

func TestInvalidBody(t *testing.T) {
	app := newTestApp(t, config.RevocationNone)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe(t *testing.T) {
	app := newTestApp(t, config.RevocationNone)
	token, id := app.register(t, "alice")

	w, env := app.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), id)

	w, _ = app.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = app.do(t, http.MethodGet, "/api/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHeaderFormat(t *testing.T) {
	app := newTestApp(t, config.RevocationNone)
	token, _ := app.register(t, "alice")

	req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewBufferString(`{}`))
	req.Header.Set("Authorization", "Token "+token)
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	t.Run("stateless", func(t *testing.T) {
		app := newTestApp(t, config.RevocationNone)
		token, _ := app.register(t, "alice")

		w, env := app.do(t, http.MethodPost, "/api/auth/logout", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Logged out successfully", env.Msg)

		w, _ = app.do(t, http.MethodGet, "/api/auth/me", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("revocable", func(t *testing.T) {
		app := newTestApp(t, config.RevocationMemory)
		token, _ := app.register(t, "alice")

		w, _ := app.do(t, http.MethodPost, "/api/auth/logout", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = app.do(t, http.MethodGet, "/api/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		w, _ = app.do(t, http.MethodPost, "/api/auth/logout", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("requires token", func(t *testing.T) {
		app := newTestApp(t, config.RevocationNone)
		w, _ := app.do(t, http.MethodPost, "/api/auth/logout", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPostLifecycle(t *testing.T) {
	app := newTestApp(t, config.RevocationNone)
	alice, aliceID := app.register(t, "alice")
	bob, _ := app.register(t, "bob")

	w, _ := app.do(t, http.MethodPost, "/api/posts", "", map[string]string{"title": "Hello", "content": "Content long enough"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := app.do(t, http.MethodPost, "/api/posts", alice, map[string]string{"title": "Hi", "content": "Content long enough"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "title", env.Field)

	id := app.createPost(t, alice, "Welcome to the Blog")
	path := fmt.Sprintf("/api/posts/%d", id)

	w, env = app.do(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var item struct {
		AuthorID   string  `json:"authorId"`
		AuthorName string  `json:"authorName"`
		UpdatedAt  *string `json:"updatedAt"`
		LikesCount int     `json:"likesCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &item))
	assert.Equal(t, aliceID, item.AuthorID)
	assert.Equal(t, "alice", item.AuthorName)
	assert.Nil(t, item.UpdatedAt)
	assert.Zero(t, item.LikesCount)

	w, _ = app.do(t, http.MethodGet, "/api/posts?search=WELCOME", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to the Blog")

	w, env = app.do(t, http.MethodGet, "/api/posts?search=nothing-matches", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	update := map[string]any{"id": id, "title": "Edited title", "content": "Edited content here"}
	w, _ = app.do(t, http.MethodPut, path, bob, update)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = app.do(t, http.MethodPut, path, alice, map[string]any{"id": id + 1, "title": "Edited title", "content": "Edited content here"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = app.do(t, http.MethodPut, path, alice, update)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &item))
	assert.NotNil(t, item.UpdatedAt)

	w, _ = app.do(t, http.MethodDelete, path, bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = app.do(t, http.MethodDelete, path, alice, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, env = app.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", env.Reason)

	w, _ = app.do(t, http.MethodGet, "/api/posts/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikeFlow(t *testing.T) {
	app := newTestApp(t, config.RevocationNone)
	author, _ := app.register(t, "author")
	fan, fanID := app.register(t, "fan")
	id := app.createPost(t, author, "Hello World")
	path := fmt.Sprintf("/api/likes/post/%d", id)

	w, _ := app.do(t, http.MethodPost, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := app.do(t, http.MethodPost, path, fan, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post liked successfully", env.Msg)

	w, env = app.do(t, http.MethodPost, path, fan, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "You have already liked this post", env.Msg)

	w, env = app.do(t, http.MethodPost, path, author, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_operation", env.Reason)

	w, _ = app.do(t, http.MethodPost, "/api/likes/post/999", fan, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = app.do(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), fanID)

	w, env = app.do(t, http.MethodGet, path+"/status", fan, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hasLiked":true}`, string(env.Data))

	w, env = app.do(t, http.MethodGet, fmt.Sprintf("/api/posts/%d", id), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"likesCount":1`)

	w, _ = app.do(t, http.MethodDelete, path, fan, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = app.do(t, http.MethodDelete, path, fan, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = app.do(t, http.MethodGet, path+"/status", fan, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hasLiked":false}`, string(env.Data))
}

func TestSeededData(t *testing.T) {
	app := newTestApp(t, config.RevocationNone)
	require.NoError(t, store.Seed(context.Background(), app.store))

	w, env := app.do(t, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []struct {
		Title      string `json:"title"`
		LikesCount int    `json:"likesCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 3)
	assert.Equal(t, "Modern Web Development", items[0].Title)

	w, _ = app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"userName": "johndoe", "password": "password123"})
	assert.Equal(t, http.StatusOK, w.Code)
}
