package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/minio"
	"GrowAGram/internal/pkg/timeline"
	"GrowAGram/internal/pkg/util"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

const (
	dateLayout     = "2006-01-02"
	excerptLength  = 140
	notifyExcerpt  = 80
	strainCacheTTL = 24 * time.Hour
)

// parseDate 解析 YYYY-MM-DD，结果为 loc 时区的零点
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, ErrDateInvalid
	}
	return t, nil
}

// reportStart 报告开始日期在业务时区下的零点
func reportStart(r *model.Report, loc *time.Location) time.Time {
	return timeline.StartOfDayIn(r.StartDate, loc)
}

func toUserSimpleDTO(u *model.User) *dto.UserSimpleDTO {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &dto.UserSimpleDTO{
		ID:        u.ID,
		Name:      u.Name,
		AvatarURL: minio.GetPublicURL(util.DerefStr(u.AvatarKey)),
	}
}

func toUserDTO(u *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		AvatarURL: minio.GetPublicURL(util.DerefStr(u.AvatarKey)),
		CreatedAt: u.CreatedAt,
	}
}

func toStrainDTO(st *model.Strain) *dto.StrainDTO {
	d := &dto.StrainDTO{}
	_ = copier.Copy(d, st)
	return d
}

func toReportDTO(r *model.Report, loc *time.Location) *dto.ReportDTO {
	d := &dto.ReportDTO{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Environment: r.Environment,
		ImageURL:    minio.GetPublicURL(util.DerefStr(r.ImageKey)),
		StartDate:   reportStart(r, loc).Format(dateLayout),
		LikesCount:  r.LikesCount,
		Author:      toUserSimpleDTO(&r.Author),
		Strains:     make([]*dto.StrainDTO, 0, len(r.Strains)),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	for _, st := range r.Strains {
		d.Strains = append(d.Strains, toStrainDTO(st))
	}
	return d
}

// toPostDTO 生长天数总是由报告开始日期重新推算，不信任存储列
func toPostDTO(p *model.Post, start time.Time, loc *time.Location) *dto.PostDTO {
	date := timeline.StartOfDayIn(p.Date, loc)
	d := &dto.PostDTO{
		ID:               p.ID,
		ReportID:         p.ReportID,
		Date:             date.Format(dateLayout),
		GrowDay:          timeline.DayOffsetFromDate(start, date),
		Title:            p.Title,
		Content:          p.Content,
		Excerpt:          util.Excerpt(p.Content, excerptLength),
		GrowStage:        p.GrowStage,
		LightHoursPerDay: p.LightHoursPerDay,
		LikesCount:       p.LikesCount,
		CommentsCount:    p.CommentsCount,
		Images:           make([]*dto.PostImageDTO, 0, len(p.Images)),
		Author:           toUserSimpleDTO(&p.Author),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	for _, img := range p.Images {
		d.Images = append(d.Images, &dto.PostImageDTO{
			ID:        img.ID,
			ObjectKey: img.ObjectKey,
			URL:       minio.GetPublicURL(img.ObjectKey),
			MimeType:  img.MimeType,
			Width:     img.Width,
			Height:    img.Height,
		})
	}
	return d
}

func toCommentDTO(c *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		Author:    toUserSimpleDTO(&c.Author),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
