package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Username  string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_username"`
	Password  string  `gorm:"type:varchar(255);not null"`
	Name      string  `gorm:"type:varchar(64);not null"`
	AvatarKey *string `gorm:"type:varchar(512)"`
	IsBan     bool    `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
