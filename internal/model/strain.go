package model

import (
	"time"
)

type Strain struct {
	ID             uint64     `gorm:"primaryKey" json:"id"`
	BreederID      string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_breeder_strain" json:"breederId"`
	StrainID       string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_breeder_strain" json:"strainId"`
	Name           string     `gorm:"type:varchar(128);not null" json:"name"`
	BreederName    string     `gorm:"type:varchar(128)" json:"breederName"`
	BreederLogoURL string     `gorm:"type:varchar(512)" json:"breederLogoUrl"`
	FloweringDays  int        `gorm:"not null;default:0" json:"floweringDays"`
	CBD            string     `gorm:"type:varchar(32)" json:"cbd"`
	Description    string     `gorm:"type:text" json:"description"`
	PicURL         string     `gorm:"type:varchar(512)" json:"picUrl"`
	SyncedAt       *time.Time `json:"syncedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (Strain) TableName() string {
	return "strains"
}
