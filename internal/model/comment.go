package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"postId"`
	AuthorID  uint64    `gorm:"not null" json:"authorId"`
	ParentID  uint64    `gorm:"not null;default:0" json:"parentId"` // 0表示直接评论帖子
	Content   string    `gorm:"type:text;not null" json:"content"`
	IsDeleted bool      `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Author User `gorm:"foreignKey:AuthorID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}
