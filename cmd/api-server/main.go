package main

import (
	"Blog/config"
	"Blog/pkg/log"
	"Blog/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "blog api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "seed", Usage: "load sample users, posts and likes on start"},
				},
				Action: func(ctx *cli.Context) error {
					if ctx.Bool("seed") {
						cfg.Store.Seed = true
					}
					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, appProvider)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
