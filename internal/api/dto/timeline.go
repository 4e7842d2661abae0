package dto

import "GrowAGram/internal/pkg/timeline"

// TimelineDateQuery 由天数推算日期
type TimelineDateQuery struct {
	Start string `form:"start" binding:"required" validate:"datetime=2006-01-02"`
	Day   string `form:"day" binding:"required"`
}

// TimelineDayQuery 由日期推算天数
type TimelineDayQuery struct {
	Start string `form:"start" binding:"required" validate:"datetime=2006-01-02"`
	Date  string `form:"date" binding:"required" validate:"datetime=2006-01-02"`
}

type TimelineEditDTO struct {
	Field string `json:"field" binding:"required" validate:"oneof=date day"`
	Value string `json:"value"`
}

// TimelineFormDTO 表单中的一次编辑
type TimelineFormDTO struct {
	StartDate string            `json:"startDate" binding:"required" validate:"datetime=2006-01-02"`
	Form      timeline.PostForm `json:"form"`
	Edit      TimelineEditDTO   `json:"edit"`
}

type TimelineResultDTO struct {
	Date    string `json:"date"`
	GrowDay int    `json:"growDay"`
}
