package model

import (
	"time"
)

const (
	EnvironmentIndoor  = "INDOOR"
	EnvironmentOutdoor = "OUTDOOR"
)

// Environments 环境枚举及展示名
var Environments = map[string]string{
	EnvironmentIndoor:  "Indoor",
	EnvironmentOutdoor: "Outdoor",
}

type Report struct {
	ID          uint64    `gorm:"primaryKey"`
	AuthorID    uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Environment string    `gorm:"type:varchar(16);not null;default:'INDOOR'" json:"environment"`
	ImageKey    *string   `gorm:"type:varchar(512)" json:"image_key"`
	StartDate   time.Time `gorm:"not null" json:"start_date"` // 零点，生长天数的基准
	LikesCount  int       `gorm:"not null;default:0" json:"likes_count"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联关系
	Author  User      `gorm:"foreignKey:AuthorID;references:ID"`
	Strains []*Strain `gorm:"many2many:report_strains;"`
	Posts   []*Post   `gorm:"foreignKey:ReportID;references:ID"`
}

func (Report) TableName() string {
	return "reports"
}
