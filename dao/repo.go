package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用单表操作，各 DAO 以值嵌入
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

// FindById 主键查询，记录不存在返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByWhere 条件查询单条
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll 条件查询多条，opts 可追加排序等
func (r *Repo[T]) FindAll(ctx context.Context, opts ...func(*gorm.DB) *gorm.DB) ([]*T, error) {
	var items []*T
	db := r.Db.WithContext(ctx)
	for _, opt := range opts {
		db = opt(db)
	}
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// Transaction 在同一事务中执行 fn
func (r *Repo[T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
