package server

import (
	"Blog/config"
	"Blog/middleware"
	"Blog/pkg/log"
	"Blog/pkg/response"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AppProvider struct {
	Config *config.Config
	Engine *gin.Engine
}

func NewGinEngine(conf *config.Config, h *Handlers) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(CORSMiddleware())
	r.Use(
		middleware.RequestID(),
		middleware.GinZap(),
		response.Recovery(func(c *gin.Context, rec any) {
			log.L.Error("panic recovered", zap.String("path", c.Request.URL.Path), zap.Any("panic", rec))
		}),
		middleware.PrometheusMiddleware(),
	)

	h.Health.RegisterRouter(r)
	api := r.Group("/api")
	h.Auth.RegisterRouter(api)
	h.Post.RegisterRouter(api)
	h.Like.RegisterRouter(api)
	return r
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Content-Length, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Location, X-Request-ID")

		// 预检请求直接返回 204
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func Run(ctx *cli.Context, app *AppProvider) error {
	eg, groupCtx := errgroup.WithContext(ctx.Context)
	c := make(chan os.Signal, 1)
	// 终止信号
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	defer signal.Stop(c)

	log.L.Info("server starting",
		zap.Int("port", app.Config.Server.Http),
		zap.String("env", app.Config.App.Env),
		zap.String("store", app.Config.Store.Driver),
		zap.String("revocation", app.Config.Jwt.Revocation),
	)

	return run(c, eg, groupCtx, app)
}

func run(c chan os.Signal, eg *errgroup.Group, ctx context.Context, app *AppProvider) error {
	serv := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.Config.Server.Http),
		Handler:      app.Engine,
		ReadTimeout:  seconds(app.Config.Server.ReadTimeoutSec),
		WriteTimeout: seconds(app.Config.Server.WriteTimeoutSec),
	}

	eg.Go(func() error {
		err := serv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		defer func() {
			log.L.Info("server stopping")

			timeCtx, timeCancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer timeCancel()

			if err := serv.Shutdown(timeCtx); err != nil {
				log.L.Info("server stopping", zap.Error(err))
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
			return nil
		}
	})

	err := eg.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.L.Error("server stopped", zap.Error(err))
		return err
	}

	log.L.Info("server stopped")
	return nil
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
