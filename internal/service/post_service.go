package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/consts"
	"GrowAGram/internal/pkg/mongo"
	"GrowAGram/internal/pkg/timeline"
	"GrowAGram/internal/pkg/util"
	"GrowAGram/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID, postID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID, postID uint64) error
	GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error)
	GetPostsByReportID(ctx context.Context, reportID uint64) ([]*dto.PostDTO, error)
	NewPostForm(ctx context.Context, userID, reportID, postID uint64) (*timeline.PostForm, error)
}

type PostServiceImpl struct {
	postRepo   repository.PostRepo
	reportRepo repository.ReportRepo
	media      MediaRegistry
	publisher  EventPublisher
	loc        *time.Location
	now        func() time.Time
}

func NewPostService(
	postRepo repository.PostRepo,
	reportRepo repository.ReportRepo,
	media MediaRegistry,
	publisher EventPublisher,
	loc *time.Location,
) PostService {
	return &PostServiceImpl{
		postRepo:   postRepo,
		reportRepo: reportRepo,
		media:      media,
		publisher:  publisher,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}
	report, err := s.getOwnedReport(ctx, userID, req.ReportID)
	if err != nil {
		return nil, err
	}
	date, growDay, err := s.placeOnTimeline(ctx, report, req.Date, 0)
	if err != nil {
		return nil, err
	}
	images, err := s.resolveImages(ctx, req.Images, nil)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		ReportID:         report.ID,
		AuthorID:         userID,
		Date:             date.UTC(),
		GrowDay:          growDay,
		Title:            req.Title,
		Content:          req.Content,
		GrowStage:        req.GrowStage,
		LightHoursPerDay: req.LightHoursPerDay,
	}
	if err = s.postRepo.CreatePost(ctx, post, images); err != nil {
		return nil, err
	}
	s.claimImages(ctx, req.Images)

	publish(ctx, s.publisher, &mongo.NotificationModel{
		ReceiverID: userID,
		ActorID:    userID,
		Event:      mongo.EventPostCreated,
		ItemType:   model.LikeItemPost,
		ItemID:     post.ID,
		Excerpt:    util.Excerpt(post.Title, notifyExcerpt),
	})
	return s.GetPost(ctx, post.ID)
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != userID {
		return nil, UnauthorizedError
	}
	report, err := s.getOwnedReport(ctx, userID, post.ReportID)
	if err != nil {
		return nil, err
	}
	date, growDay, err := s.placeOnTimeline(ctx, report, req.Date, post.ID)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]*model.PostImage, len(post.Images))
	for _, img := range post.Images {
		existing[img.ObjectKey] = img
	}
	images, err := s.resolveImages(ctx, req.Images, existing)
	if err != nil {
		return nil, err
	}

	post.Date = date.UTC()
	post.GrowDay = growDay
	post.Title = req.Title
	post.Content = req.Content
	post.GrowStage = req.GrowStage
	post.LightHoursPerDay = req.LightHoursPerDay
	if err = s.postRepo.UpdatePost(ctx, post, images); err != nil {
		return nil, err
	}

	kept := make(map[string]struct{}, len(req.Images))
	for _, key := range req.Images {
		kept[key] = struct{}{}
	}
	var removed []string
	for key := range existing {
		if _, ok := kept[key]; !ok {
			removed = append(removed, key)
		}
	}
	s.claimImages(ctx, req.Images)
	if len(removed) > 0 {
		if err = s.media.Discard(ctx, removed...); err != nil {
			log.WarnContext(ctx, "discard removed post images failed", "post_id", post.ID, "err", err)
		}
	}
	return s.GetPost(ctx, post.ID)
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID {
		return UnauthorizedError
	}
	if err = s.postRepo.DeletePost(ctx, postID); err != nil {
		return err
	}
	if keys := postImageKeys(post); len(keys) > 0 {
		if err = s.media.Discard(ctx, keys...); err != nil {
			log.WarnContext(ctx, "discard deleted post images failed", "post_id", postID, "err", err)
		}
	}
	return nil
}

func (s *PostServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	report, err := s.reportRepo.GetReport(ctx, post.ReportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return toPostDTO(post, reportStart(report, s.loc), s.loc), nil
}

func (s *PostServiceImpl) GetPostsByReportID(ctx context.Context, reportID uint64) ([]*dto.PostDTO, error) {
	report, err := s.reportRepo.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	posts, err := s.postRepo.GetPostsByReportID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	start := reportStart(report, s.loc)
	res := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		res = append(res, toPostDTO(p, start, s.loc))
	}
	return res, nil
}

// NewPostForm 新建时日期默认今天，编辑时带出原帖内容
func (s *PostServiceImpl) NewPostForm(ctx context.Context, userID, reportID, postID uint64) (*timeline.PostForm, error) {
	report, err := s.getOwnedReport(ctx, userID, reportID)
	if err != nil {
		return nil, err
	}
	start := reportStart(report, s.loc)

	form := timeline.PostForm{Date: timeline.StartOfDayIn(s.now(), s.loc)}
	if postID != 0 {
		post, err := s.postRepo.GetPost(ctx, postID)
		if err != nil {
			return nil, err
		}
		if post == nil || post.ReportID != reportID {
			return nil, ErrPostNotFound
		}
		form = timeline.PostForm{
			Date:             timeline.StartOfDayIn(post.Date, s.loc),
			Title:            post.Title,
			Content:          post.Content,
			GrowStage:        post.GrowStage,
			LightHoursPerDay: post.LightHoursPerDay,
			Images:           make([]string, 0, len(post.Images)),
		}
		for _, img := range post.Images {
			form.Images = append(form.Images, img.ObjectKey)
		}
	}

	res := timeline.NewSession(start, form).Form()
	return &res, nil
}

func (s *PostServiceImpl) getOwnedReport(ctx context.Context, userID, reportID uint64) (*model.Report, error) {
	report, err := s.reportRepo.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	if report.AuthorID != userID {
		return nil, UnauthorizedError
	}
	return report, nil
}

// placeOnTimeline 计算帖子日期与生长天数，并校验同一报告每天只能一篇
func (s *PostServiceImpl) placeOnTimeline(ctx context.Context, report *model.Report, rawDate string, excludeID uint64) (time.Time, int, error) {
	date, err := parseDate(rawDate, s.loc)
	if err != nil {
		return time.Time{}, 0, err
	}
	growDay := timeline.DayOffsetFromDate(reportStart(report, s.loc), date)
	if growDay < 0 {
		return time.Time{}, 0, ErrPostBeforeReportStart
	}
	exists, err := s.postRepo.ExistsOnDate(ctx, report.ID, date.UTC(), excludeID)
	if err != nil {
		return time.Time{}, 0, err
	}
	if exists {
		return time.Time{}, 0, ErrOnePostPerDay
	}
	return date, growDay, nil
}

// resolveImages 新图片须在临时登记表中，existing 为帖子已有图片
func (s *PostServiceImpl) resolveImages(ctx context.Context, keys []string, existing map[string]*model.PostImage) ([]*model.PostImage, error) {
	if len(keys) > consts.MaxPostImages {
		return nil, ErrTooManyImages
	}
	seen := make(map[string]struct{}, len(keys))
	images := make([]*model.PostImage, 0, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if img, ok := existing[key]; ok {
			images = append(images, &model.PostImage{
				ObjectKey: img.ObjectKey,
				MimeType:  img.MimeType,
				Width:     img.Width,
				Height:    img.Height,
			})
			continue
		}
		meta, err := s.media.Lookup(ctx, key)
		if err != nil {
			return nil, err
		}
		if meta == nil {
			return nil, ErrFileNotExist
		}
		images = append(images, &model.PostImage{
			ObjectKey: key,
			MimeType:  meta.MimeType,
			Width:     meta.Width,
			Height:    meta.Height,
		})
	}
	return images, nil
}

func (s *PostServiceImpl) claimImages(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	if err := s.media.Claim(ctx, keys...); err != nil {
		log.WarnContext(ctx, "claim post images failed", "err", err)
	}
}

func postImageKeys(post *model.Post) []string {
	keys := make([]string, 0, len(post.Images))
	for _, img := range post.Images {
		keys = append(keys, img.ObjectKey)
	}
	return keys
}
