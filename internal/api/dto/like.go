package dto

import "time"

type LikeDTO struct {
	UserID    uint64    `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type LikesResultDTO struct {
	Count int64      `json:"count"`
	Likes []*LikeDTO `json:"likes"`
}
