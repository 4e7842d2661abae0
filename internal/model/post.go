package model

import (
	"time"
)

// GrowStages 生长阶段枚举及展示名
var GrowStages = map[string]string{
	"PREPARATION_STAGE":  "Preparation",
	"GERMINANTION_STAGE": "Germination",
	"SEEDLING_STAGE":     "Seedling",
	"VEGETATIVE_STAGE":   "Vegetative",
	"FLOWERING_STAGE":    "Flowering",
	"HARVEST_STAGE":      "Harvest",
	"CURING_STAGE":       "Curing",
}

type Post struct {
	ID               uint64    `gorm:"primaryKey"`
	ReportID         uint64    `gorm:"not null;index:idx_report_date" json:"report_id"`
	AuthorID         uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	Date             time.Time `gorm:"not null;index:idx_report_date" json:"date"`
	GrowDay          int       `gorm:"not null;default:0" json:"grow_day"` // 冗余列，以 Report.StartDate 推算为准
	Title            string    `gorm:"type:varchar(255);not null" json:"title"`
	Content          string    `gorm:"type:text;not null" json:"content"`
	GrowStage        string    `gorm:"type:varchar(32);not null" json:"grow_stage"`
	LightHoursPerDay *int      `json:"light_hours_per_day"`
	LikesCount       int       `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount    int       `gorm:"not null;default:0" json:"comments_count"`
	IsDeleted        bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// 关联关系
	Author User         `gorm:"foreignKey:AuthorID;references:ID"`
	Images []*PostImage `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
