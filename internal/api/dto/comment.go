package dto

import "time"

// CommentBaseDTO ID 不为空时为编辑
type CommentBaseDTO struct {
	ID       uint64 `json:"id"`
	PostID   uint64 `json:"postId" binding:"required"`
	ParentID uint64 `json:"parentId"`
	Content  string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

type CommentDTO struct {
	ID        uint64         `json:"id"`
	PostID    uint64         `json:"postId"`
	ParentID  uint64         `json:"parentId"`
	Content   string         `json:"content"`
	Author    *UserSimpleDTO `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
