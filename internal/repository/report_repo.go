package repository

import (
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/timeline"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ReportSortColumns 允许排序的字段
var ReportSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"startDate": "start_date",
}

type ReportRepo interface {
	CreateReport(ctx context.Context, report *model.Report, strainIDs []uint64) error
	UpdateReport(ctx context.Context, report *model.Report, strainIDs []uint64, growDayStart time.Time) error
	DeleteReport(ctx context.Context, id uint64) error
	GetReport(ctx context.Context, id uint64) (*model.Report, error)
	GetReportByIds(ctx context.Context, ids []uint64) ([]*model.Report, error)
	GetReportsByAuthor(ctx context.Context, authorID uint64) ([]*model.Report, error)
	ListReports(ctx context.Context, keyword, sortBy string, desc bool, limit, offset int) ([]*model.Report, int64, error)
	UpdateLikesCount(ctx context.Context, id uint64, count int64) error
}

type ReportRepoImpl struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &ReportRepoImpl{db: db}
}

func (s *ReportRepoImpl) CreateReport(ctx context.Context, report *model.Report, strainIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Strains", "Posts", "Author").Create(report).Error; err != nil {
			return err
		}
		return replaceStrains(tx, report, strainIDs)
	})
}

// UpdateReport growDayStart 非零时在同一事务内按新的开始日期刷新帖子天数列
func (s *ReportRepoImpl) UpdateReport(ctx context.Context, report *model.Report, strainIDs []uint64, growDayStart time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Report{}).
			Where("id = ?", report.ID).
			Updates(map[string]any{
				"title":       report.Title,
				"description": report.Description,
				"environment": report.Environment,
				"image_key":   report.ImageKey,
				"start_date":  report.StartDate,
				"updated_at":  time.Now().UTC(),
			}).Error
		if err != nil {
			return err
		}
		if err = replaceStrains(tx, report, strainIDs); err != nil {
			return err
		}
		if growDayStart.IsZero() {
			return nil
		}
		return recalculateGrowDays(tx, report.ID, growDayStart)
	})
}

func replaceStrains(tx *gorm.DB, report *model.Report, strainIDs []uint64) error {
	strains := make([]*model.Strain, 0, len(strainIDs))
	if len(strainIDs) > 0 {
		if err := tx.Where("id IN ?", strainIDs).Find(&strains).Error; err != nil {
			return err
		}
	}
	return tx.Model(report).Association("Strains").Replace(strains)
}

func (s *ReportRepoImpl) DeleteReport(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Report{}).Where("id = ?", id).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).Where("report_id = ?", id).Update("is_deleted", true).Error
	})
}

func (s *ReportRepoImpl) GetReport(ctx context.Context, id uint64) (*model.Report, error) {
	var report model.Report
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Strains").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (s *ReportRepoImpl) GetReportByIds(ctx context.Context, ids []uint64) ([]*model.Report, error) {
	reports := make([]*model.Report, 0, len(ids))
	if len(ids) == 0 {
		return reports, nil
	}
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Strains").
		Where("id IN ? AND is_deleted = ?", ids, false).
		Find(&reports).Error
	return reports, err
}

func (s *ReportRepoImpl) GetReportsByAuthor(ctx context.Context, authorID uint64) ([]*model.Report, error) {
	var reports []*model.Report
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Strains").
		Where("author_id = ? AND is_deleted = ?", authorID, false).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// ListReports 分页列出报告，keyword 非空时按标题/描述模糊匹配
func (s *ReportRepoImpl) ListReports(ctx context.Context, keyword, sortBy string, desc bool, limit, offset int) ([]*model.Report, int64, error) {
	column, ok := ReportSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	order := column + " ASC"
	if desc {
		order = column + " DESC"
	}

	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("is_deleted = ?", false)
		if kw := strings.TrimSpace(keyword); kw != "" {
			like := "%" + kw + "%"
			db = db.Where("title LIKE ? OR description LIKE ?", like, like)
		}
		return db
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Report{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []*model.Report
	err := s.db.WithContext(ctx).
		Scopes(filter).
		Preload("Author").
		Preload("Strains").
		Order(order).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&reports).Error
	return reports, total, err
}

// recalculateGrowDays 开始日期变更后刷新所有帖子的冗余天数列
func recalculateGrowDays(tx *gorm.DB, reportID uint64, startDate time.Time) error {
	var posts []*model.Post
	if err := tx.Select("id", "date").Where("report_id = ?", reportID).Find(&posts).Error; err != nil {
		return err
	}
	for _, p := range posts {
		growDay := timeline.DayOffsetFromDate(startDate, p.Date)
		if err := tx.Model(&model.Post{}).Where("id = ?", p.ID).Update("grow_day", growDay).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ReportRepoImpl) UpdateLikesCount(ctx context.Context, id uint64, count int64) error {
	return s.db.WithContext(ctx).Model(&model.Report{}).
		Where("id = ?", id).
		Update("likes_count", count).Error
}
