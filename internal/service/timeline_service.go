package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/pkg/timeline"
	"GrowAGram/internal/pkg/util"
	"context"
	"time"
)

// TimelineService 无状态的生长天数计算接口
type TimelineService interface {
	DateFromDay(ctx context.Context, req *dto.TimelineDateQuery) (*dto.TimelineResultDTO, error)
	DayFromDate(ctx context.Context, req *dto.TimelineDayQuery) (*dto.TimelineResultDTO, error)
	ApplyEdit(ctx context.Context, req *dto.TimelineFormDTO) (*timeline.PostForm, error)
}

type TimelineServiceImpl struct {
	loc *time.Location
}

func NewTimelineService(loc *time.Location) TimelineService {
	return &TimelineServiceImpl{loc: loc}
}

func (s *TimelineServiceImpl) DateFromDay(_ context.Context, req *dto.TimelineDateQuery) (*dto.TimelineResultDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}
	start, err := parseDate(req.Start, s.loc)
	if err != nil {
		return nil, err
	}
	day, err := timeline.ParseDayOffset(req.Day)
	if err != nil {
		return nil, err
	}
	return &dto.TimelineResultDTO{
		Date:    timeline.DateFromDayOffset(start, day).Format(dateLayout),
		GrowDay: day,
	}, nil
}

func (s *TimelineServiceImpl) DayFromDate(_ context.Context, req *dto.TimelineDayQuery) (*dto.TimelineResultDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}
	start, err := parseDate(req.Start, s.loc)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date, s.loc)
	if err != nil {
		return nil, err
	}
	return &dto.TimelineResultDTO{
		Date:    date.Format(dateLayout),
		GrowDay: timeline.DayOffsetFromDate(start, date),
	}, nil
}

// ApplyEdit 对表单执行一次编辑；天数输入非法时原样返回表单
func (s *TimelineServiceImpl) ApplyEdit(_ context.Context, req *dto.TimelineFormDTO) (*timeline.PostForm, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}
	start, err := parseDate(req.StartDate, s.loc)
	if err != nil {
		return nil, err
	}
	session := timeline.NewSession(start, req.Form)

	switch req.Edit.Field {
	case "date":
		date, err := parseDate(req.Edit.Value, s.loc)
		if err != nil {
			return nil, err
		}
		session.EditDate(date)
	case "day":
		session.EditDayOffset(req.Edit.Value)
	}

	res := session.Form()
	return &res, nil
}
