package repository

import (
	"GrowAGram/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, images []*model.PostImage) error
	UpdatePost(ctx context.Context, post *model.Post, images []*model.PostImage) error
	DeletePost(ctx context.Context, id uint64) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostsByReportID(ctx context.Context, reportID uint64) ([]*model.Post, error)
	ExistsOnDate(ctx context.Context, reportID uint64, date time.Time, excludeID uint64) (bool, error)
	UpdateLikesCount(ctx context.Context, id uint64, count int64) error
	UpdateCommentsCount(ctx context.Context, id uint64, count int64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, images []*model.PostImage) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images", "Author").Create(post).Error; err != nil {
			return err
		}
		return createImages(tx, post.ID, images)
	})
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, images []*model.PostImage) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Post{}).
			Where("id = ?", post.ID).
			Updates(map[string]any{
				"date":                post.Date,
				"grow_day":            post.GrowDay,
				"title":               post.Title,
				"content":             post.Content,
				"grow_stage":          post.GrowStage,
				"light_hours_per_day": post.LightHoursPerDay,
				"updated_at":          time.Now().UTC(),
			}).Error
		if err != nil {
			return err
		}
		if err = tx.Where("post_id = ?", post.ID).Delete(&model.PostImage{}).Error; err != nil {
			return err
		}
		return createImages(tx, post.ID, images)
	})
}

func createImages(tx *gorm.DB, postID uint64, images []*model.PostImage) error {
	if len(images) == 0 {
		return nil
	}
	for i, img := range images {
		img.ID = 0
		img.PostID = postID
		img.SortOrder = int8(i)
	}
	return tx.Create(images).Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByReportID 按日期升序返回报告下的全部帖子
func (s *PostRepoImpl) GetPostsByReportID(ctx context.Context, reportID uint64) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("report_id = ? AND is_deleted = ?", reportID, false).
		Order("date ASC").
		Order("id ASC").
		Find(&posts).Error
	return posts, err
}

// ExistsOnDate 同一报告同一天是否已有帖子，excludeID 用于编辑时排除自身
func (s *PostRepoImpl) ExistsOnDate(ctx context.Context, reportID uint64, date time.Time, excludeID uint64) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("report_id = ? AND date = ? AND is_deleted = ?", reportID, date, false)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (s *PostRepoImpl) UpdateLikesCount(ctx context.Context, id uint64, count int64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("likes_count", count).Error
}

func (s *PostRepoImpl) UpdateCommentsCount(ctx context.Context, id uint64, count int64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("comments_count", count).Error
}
