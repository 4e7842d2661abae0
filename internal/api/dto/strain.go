package dto

import "time"

type StrainInfoQueryDTO struct {
	BreederID string `form:"breederId" binding:"required"`
	StrainID  string `form:"strainId" binding:"required"`
}

type StrainDTO struct {
	ID             uint64     `json:"id"`
	BreederID      string     `json:"breederId"`
	StrainID       string     `json:"strainId"`
	Name           string     `json:"name"`
	BreederName    string     `json:"breederName"`
	BreederLogoURL string     `json:"breederLogoUrl"`
	FloweringDays  int        `json:"floweringDays"`
	CBD            string     `json:"cbd"`
	Description    string     `json:"description"`
	PicURL         string     `json:"picUrl"`
	SyncedAt       *time.Time `json:"syncedAt"`
}
