package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/es"
	"GrowAGram/internal/pkg/mongo"
	"GrowAGram/internal/pkg/timeline"
	"GrowAGram/internal/pkg/util"
	"GrowAGram/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type ReportService interface {
	CreateReport(ctx context.Context, userID uint64, req *dto.ReportBaseDTO) (*dto.ReportDTO, error)
	SaveReport(ctx context.Context, userID, reportID uint64, req *dto.ReportBaseDTO) (*dto.ReportDTO, error)
	DeleteReport(ctx context.Context, userID, reportID uint64) error
	GetOwnReports(ctx context.Context, userID uint64) ([]*dto.ReportDTO, error)
	GetAllReports(ctx context.Context, req *dto.ReportListDTO) (*dto.PageResultDTO[*dto.ReportDTO], error)
	GetReportWithPosts(ctx context.Context, reportID uint64) (*dto.ReportWithPostsDTO, error)
}

type ReportServiceImpl struct {
	reportRepo repository.ReportRepo
	postRepo   repository.PostRepo
	searchRepo es.ReportRepo
	media      MediaRegistry
	publisher  EventPublisher
	loc        *time.Location
	now        func() time.Time
}

// NewReportService searchRepo 为 nil 时关键词检索退化为数据库模糊匹配
func NewReportService(
	reportRepo repository.ReportRepo,
	postRepo repository.PostRepo,
	searchRepo es.ReportRepo,
	media MediaRegistry,
	publisher EventPublisher,
	loc *time.Location,
) ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		postRepo:   postRepo,
		searchRepo: searchRepo,
		media:      media,
		publisher:  publisher,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *ReportServiceImpl) CreateReport(ctx context.Context, userID uint64, req *dto.ReportBaseDTO) (*dto.ReportDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}
	start, err := s.resolveStartDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	if err = s.checkImage(ctx, req.ImageKey); err != nil {
		return nil, err
	}

	report := &model.Report{
		AuthorID:    userID,
		Title:       req.Title,
		Description: req.Description,
		Environment: req.Environment,
		ImageKey:    req.ImageKey,
		StartDate:   start.UTC(),
	}
	if err = s.reportRepo.CreateReport(ctx, report, uniqueIDs(req.StrainIDs)); err != nil {
		return nil, err
	}
	if req.ImageKey != nil {
		if err = s.media.Claim(ctx, *req.ImageKey); err != nil {
			log.WarnContext(ctx, "claim report image failed", "key", *req.ImageKey, "err", err)
		}
	}

	saved, err := s.reportRepo.GetReport(ctx, report.ID)
	if err != nil {
		return nil, err
	}
	s.index(ctx, saved)
	publish(ctx, s.publisher, &mongo.NotificationModel{
		ReceiverID: userID,
		ActorID:    userID,
		Event:      mongo.EventReportCreated,
		ItemType:   model.LikeItemReport,
		ItemID:     saved.ID,
		Excerpt:    util.Excerpt(saved.Title, notifyExcerpt),
	})
	return toReportDTO(saved, s.loc), nil
}

// SaveReport 开始日期变化时同步刷新所有帖子的生长天数
func (s *ReportServiceImpl) SaveReport(ctx context.Context, userID, reportID uint64, req *dto.ReportBaseDTO) (*dto.ReportDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}
	report, err := s.getOwnedReport(ctx, userID, reportID)
	if err != nil {
		return nil, err
	}

	start := reportStart(report, s.loc)
	if req.StartDate != "" {
		if start, err = parseDate(req.StartDate, s.loc); err != nil {
			return nil, err
		}
	}
	startChanged := !start.Equal(reportStart(report, s.loc))

	oldImage := util.DerefStr(report.ImageKey)
	newImage := util.DerefStr(req.ImageKey)
	if newImage != oldImage {
		if err = s.checkImage(ctx, req.ImageKey); err != nil {
			return nil, err
		}
	}

	report.Title = req.Title
	report.Description = req.Description
	report.Environment = req.Environment
	report.ImageKey = req.ImageKey
	report.StartDate = start.UTC()
	var growDayStart time.Time
	if startChanged {
		growDayStart = start
	}
	if err = s.reportRepo.UpdateReport(ctx, report, uniqueIDs(req.StrainIDs), growDayStart); err != nil {
		return nil, err
	}
	if newImage != oldImage {
		if newImage != "" {
			if err = s.media.Claim(ctx, newImage); err != nil {
				log.WarnContext(ctx, "claim report image failed", "key", newImage, "err", err)
			}
		}
		if oldImage != "" {
			if err = s.media.Discard(ctx, oldImage); err != nil {
				log.WarnContext(ctx, "discard old report image failed", "key", oldImage, "err", err)
			}
		}
	}

	saved, err := s.reportRepo.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, ErrReportNotFound
	}
	s.index(ctx, saved)
	return toReportDTO(saved, s.loc), nil
}

// DeleteReport 软删除报告及其帖子，随后清理封面与帖子图片
func (s *ReportServiceImpl) DeleteReport(ctx context.Context, userID, reportID uint64) error {
	report, err := s.getOwnedReport(ctx, userID, reportID)
	if err != nil {
		return err
	}
	posts, err := s.postRepo.GetPostsByReportID(ctx, reportID)
	if err != nil {
		return err
	}
	if err = s.reportRepo.DeleteReport(ctx, reportID); err != nil {
		return err
	}

	var keys []string
	if cover := util.DerefStr(report.ImageKey); cover != "" {
		keys = append(keys, cover)
	}
	for _, p := range posts {
		keys = append(keys, postImageKeys(p)...)
	}
	if len(keys) > 0 {
		if err = s.media.Discard(ctx, keys...); err != nil {
			log.WarnContext(ctx, "discard deleted report images failed", "report_id", reportID, "err", err)
		}
	}
	if s.searchRepo != nil {
		if err := s.searchRepo.DeleteReport(ctx, reportID); err != nil {
			log.WarnContext(ctx, "remove report from search index failed", "report_id", reportID, "err", err)
		}
	}
	return nil
}

func (s *ReportServiceImpl) GetOwnReports(ctx context.Context, userID uint64) ([]*dto.ReportDTO, error) {
	reports, err := s.reportRepo.GetReportsByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.ReportDTO, 0, len(reports))
	for _, r := range reports {
		res = append(res, toReportDTO(r, s.loc))
	}
	return res, nil
}

// GetAllReports 有关键词且启用 ES 时走全文检索，否则数据库分页
func (s *ReportServiceImpl) GetAllReports(ctx context.Context, req *dto.ReportListDTO) (*dto.PageResultDTO[*dto.ReportDTO], error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}
	limit, offset := util.Paginate(req.Page, req.PageSize)

	if req.Keyword != "" && s.searchRepo != nil {
		res, err := s.searchReports(ctx, req.Keyword, limit, offset)
		if err == nil {
			return res, nil
		}
		log.WarnContext(ctx, "search reports failed, fallback to database", "keyword", req.Keyword, "err", err)
	}

	reports, total, err := s.reportRepo.ListReports(ctx, req.Keyword, req.SortBy, req.Desc, limit, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ReportDTO, 0, len(reports))
	for _, r := range reports {
		list = append(list, toReportDTO(r, s.loc))
	}
	return &dto.PageResultDTO[*dto.ReportDTO]{Total: total, List: list}, nil
}

func (s *ReportServiceImpl) searchReports(ctx context.Context, keyword string, limit, offset int) (*dto.PageResultDTO[*dto.ReportDTO], error) {
	ids, total, err := s.searchRepo.SearchReports(ctx, keyword, offset, limit)
	if err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.GetReportByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.Report, len(reports))
	for _, r := range reports {
		byID[r.ID] = r
	}
	list := make([]*dto.ReportDTO, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			list = append(list, toReportDTO(r, s.loc))
		}
	}
	return &dto.PageResultDTO[*dto.ReportDTO]{Total: total, List: list}, nil
}

func (s *ReportServiceImpl) GetReportWithPosts(ctx context.Context, reportID uint64) (*dto.ReportWithPostsDTO, error) {
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
	res := &dto.ReportWithPostsDTO{
		ReportDTO: toReportDTO(report, s.loc),
		Posts:     make([]*dto.PostDTO, 0, len(posts)),
	}
	for _, p := range posts {
		res.Posts = append(res.Posts, toPostDTO(p, start, s.loc))
	}
	return res, nil
}

func (s *ReportServiceImpl) getOwnedReport(ctx context.Context, userID, reportID uint64) (*model.Report, error) {
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

// resolveStartDate 未指定时取业务时区的当天零点
func (s *ReportServiceImpl) resolveStartDate(raw string) (time.Time, error) {
	if raw == "" {
		return timeline.StartOfDayIn(s.now(), s.loc), nil
	}
	return parseDate(raw, s.loc)
}

func (s *ReportServiceImpl) checkImage(ctx context.Context, key *string) error {
	if key == nil || *key == "" {
		return nil
	}
	meta, err := s.media.Lookup(ctx, *key)
	if err != nil {
		return err
	}
	if meta == nil {
		return ErrFileNotExist
	}
	return nil
}

// index 写入搜索索引失败只记录日志
func (s *ReportServiceImpl) index(ctx context.Context, r *model.Report) {
	if s.searchRepo == nil || r == nil {
		return
	}
	strains := make([]string, 0, len(r.Strains))
	for _, st := range r.Strains {
		strains = append(strains, st.Name)
	}
	doc := &es.ReportES{
		ID:          r.ID,
		AuthorID:    r.AuthorID,
		AuthorName:  r.Author.Name,
		Title:       r.Title,
		Description: util.HTMLToText(r.Description),
		Environment: r.Environment,
		Strains:     strains,
		StartDate:   r.StartDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if err := s.searchRepo.IndexReport(ctx, doc); err != nil {
		log.WarnContext(ctx, "index report failed", "report_id", r.ID, "err", err)
	}
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	res := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
