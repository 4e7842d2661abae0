package repository

import (
	"GrowAGram/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StrainRepo interface {
	GetAllStrains(ctx context.Context) ([]*model.Strain, error)
	GetStrain(ctx context.Context, breederID, strainID string) (*model.Strain, error)
	UpsertStrain(ctx context.Context, strain *model.Strain) error
}

type StrainRepoImpl struct {
	db *gorm.DB
}

func NewStrainRepo(db *gorm.DB) StrainRepo {
	return &StrainRepoImpl{db}
}

func (s *StrainRepoImpl) GetAllStrains(ctx context.Context) ([]*model.Strain, error) {
	var strains []*model.Strain
	err := s.db.WithContext(ctx).Order("name ASC").Find(&strains).Error
	return strains, err
}

func (s *StrainRepoImpl) GetStrain(ctx context.Context, breederID, strainID string) (*model.Strain, error) {
	var strain model.Strain
	err := s.db.WithContext(ctx).
		Where("breeder_id = ? AND strain_id = ?", breederID, strainID).
		First(&strain).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &strain, nil
}

// UpsertStrain 以 (breeder_id, strain_id) 为键插入或更新
func (s *StrainRepoImpl) UpsertStrain(ctx context.Context, strain *model.Strain) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "breeder_id"}, {Name: "strain_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "breeder_name", "breeder_logo_url", "flowering_days",
			"cbd", "description", "pic_url", "synced_at", "updated_at",
		}),
	}).Create(strain).Error
	if err != nil {
		return err
	}
	if strain.ID == 0 {
		stored, err := s.GetStrain(ctx, strain.BreederID, strain.StrainID)
		if err != nil {
			return err
		}
		if stored != nil {
			strain.ID = stored.ID
		}
	}
	return nil
}
