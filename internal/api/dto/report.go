package dto

import "time"

// ReportBaseDTO 创建/编辑报告
type ReportBaseDTO struct {
	Title       string   `json:"title" binding:"required" validate:"min=12,max=255"`
	Description string   `json:"description" binding:"required" validate:"min=42,max=5000"`
	Environment string   `json:"environment" binding:"required" validate:"environment"`
	StartDate   string   `json:"startDate" validate:"omitempty,datetime=2006-01-02"` // 为空时取当天
	ImageKey    *string  `json:"imageKey"`
	StrainIDs   []uint64 `json:"strainIds" validate:"max=10"`
}

// ReportListDTO 报告列表查询
type ReportListDTO struct {
	Keyword  string `form:"keyword"`
	SortBy   string `form:"sortBy" validate:"omitempty,oneof=createdAt updatedAt title startDate"`
	Desc     bool   `form:"desc"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

type ReportDTO struct {
	ID          uint64         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Environment string         `json:"environment"`
	ImageURL    string         `json:"imageUrl"`
	StartDate   string         `json:"startDate"`
	LikesCount  int            `json:"likesCount"`
	Author      *UserSimpleDTO `json:"author"`
	Strains     []*StrainDTO   `json:"strains"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type ReportWithPostsDTO struct {
	*ReportDTO
	Posts []*PostDTO `json:"posts"`
}
