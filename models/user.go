package models

import "time"

type User struct {
	ID           string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	UserName     string    `gorm:"column:user_name;type:varchar(50);not null;uniqueIndex:uk_user_name" json:"userName"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;default:''" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
