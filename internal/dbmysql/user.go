package dbmysql

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Login        string    `gorm:"column:login;uniqueIndex;size:15;not null" json:"login"`
	PasswordHash string    `gorm:"column:pwd;size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
