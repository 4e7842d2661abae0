package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Username string  `json:"username" binding:"required" validate:"min=3,max=20"`
	Password string  `json:"password" binding:"required" validate:"min=6,max=64"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=64"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO 用户信息
type UserDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSimpleDTO 列表中展示的作者信息
type UserSimpleDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

type LoginResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
