package model

import (
	"time"
)

const (
	LikeItemReport  = "REPORT"
	LikeItemPost    = "POST"
	LikeItemComment = "COMMENT"
)

type Like struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	ItemType  string    `gorm:"primaryKey;type:varchar(16);index:idx_item" json:"itemType"`
	ItemID    uint64    `gorm:"primaryKey;index:idx_item" json:"itemId"`
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Like) TableName() string {
	return "likes"
}
