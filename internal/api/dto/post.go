package dto

import "time"

// PostBaseDTO 创建/编辑帖子；生长天数由服务端根据日期计算
type PostBaseDTO struct {
	ReportID         uint64   `json:"reportId" binding:"required"`
	Date             string   `json:"date" binding:"required" validate:"datetime=2006-01-02"`
	Title            string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Content          string   `json:"content" binding:"required" validate:"min=1,max=20000"`
	GrowStage        string   `json:"growStage" binding:"required" validate:"growstage"`
	LightHoursPerDay *int     `json:"lightHoursPerDay" validate:"omitempty,min=0,max=24"`
	Images           []string `json:"images" validate:"max=9,dive,min=1"`
}

type PostImageDTO struct {
	ID        uint64 `json:"id"`
	ObjectKey string `json:"objectKey"`
	URL       string `json:"url"`
	MimeType  string `json:"mimeType"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type PostDTO struct {
	ID               uint64          `json:"id"`
	ReportID         uint64          `json:"reportId"`
	Date             string          `json:"date"`
	GrowDay          int             `json:"growDay"`
	Title            string          `json:"title"`
	Content          string          `json:"content"`
	Excerpt          string          `json:"excerpt"`
	GrowStage        string          `json:"growStage"`
	LightHoursPerDay *int            `json:"lightHoursPerDay"`
	LikesCount       int             `json:"likesCount"`
	CommentsCount    int             `json:"commentsCount"`
	Images           []*PostImageDTO `json:"images"`
	Author           *UserSimpleDTO  `json:"author"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
