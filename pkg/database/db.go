package database

import (
	"Blog/config"
	"Blog/models"
	"Blog/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqliteMemoryDSN = "file::memory:?cache=shared"

// NewDB 按 store.driver 初始化数据库连接并自动建表
func NewDB(conf *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorOf(conf.Store)
	if err != nil {
		return nil, err
	}

	level := logger.Silent
	if conf.Debug() {
		level = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
	if err != nil {
		log.L.Error("failed to connect database", zap.String("driver", conf.Store.Driver), zap.Error(err))
		return nil, err
	}

	if conf.Store.Driver == config.StoreSqlite {
		// sqlite 单写者
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.L.Info("connect database success", zap.String("driver", conf.Store.Driver))
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Like{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func dialectorOf(conf *config.Store) (gorm.Dialector, error) {
	switch conf.Driver {
	case config.StoreSqlite:
		dsn := conf.DSN
		if dsn == "" || dsn == ":memory:" {
			dsn = sqliteMemoryDSN
		}
		return sqlite.Open(dsn), nil
	case config.StoreMySQL:
		dsn := conf.DSN
		if dsn == "" {
			dsn = conf.MySQL.Dsn()
		}
		return mysql.Open(dsn), nil
	case config.StorePostgres:
		return postgres.Open(conf.DSN), nil
	default:
		return nil, fmt.Errorf("driver %q is not a sql backend", conf.Driver)
	}
}
