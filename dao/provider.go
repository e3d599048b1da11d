package dao

import (
	"Blog/config"
	"Blog/pkg/database"
	"Blog/pkg/log"
	"Blog/store"
	"context"

	"go.uber.org/zap"
)

// NewBlogStore 按配置选择内存或数据库实现，seed=true 时写入演示数据
func NewBlogStore(conf *config.Config) (store.Store, func(), error) {
	var (
		s       store.Store
		cleanup = func() {}
	)

	if conf.Store.Driver == config.StoreMemory {
		s = store.NewMemoryStore()
	} else {
		db, err := database.NewDB(conf)
		if err != nil {
			return nil, nil, err
		}
		s = NewStore(db)
		cleanup = func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}

	if conf.Store.Seed {
		if err := store.Seed(context.Background(), s); err != nil {
			cleanup()
			return nil, nil, err
		}
		log.L.Info("seed data loaded")
	}
	log.L.Info("store ready", zap.String("driver", conf.Store.Driver))
	return s, cleanup, nil
}
