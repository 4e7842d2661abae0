package repository

import (
	"GrowAGram/internal/model"
	"context"

	"gorm.io/gorm"
)

type LikeRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userID uint64, itemType string, itemID uint64) (bool, error)
	CheckLikeExists(ctx context.Context, userID uint64, itemType string, itemID uint64) (bool, error)
	GetLikesByItem(ctx context.Context, itemType string, itemID uint64) ([]*model.Like, error)
	CountByItem(ctx context.Context, itemType string, itemID uint64) (int64, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db}
}

func (s *LikeRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Omit("User").Create(like).Error
}

// DeleteLike 返回是否真的删除了记录
func (s *LikeRepoImpl) DeleteLike(ctx context.Context, userID uint64, itemType string, itemID uint64) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Delete(&model.Like{})
	return res.RowsAffected > 0, res.Error
}

func (s *LikeRepoImpl) CheckLikeExists(ctx context.Context, userID uint64, itemType string, itemID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Count(&count).Error
	return count > 0, err
}

func (s *LikeRepoImpl) GetLikesByItem(ctx context.Context, itemType string, itemID uint64) ([]*model.Like, error) {
	var likes []*model.Like
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("item_type = ? AND item_id = ?", itemType, itemID).
		Order("created_at DESC").
		Find(&likes).Error
	return likes, err
}

func (s *LikeRepoImpl) CountByItem(ctx context.Context, itemType string, itemID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("item_type = ? AND item_id = ?", itemType, itemID).
		Count(&count).Error
	return count, err
}
