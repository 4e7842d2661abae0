package handler

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/pkg/response"
	"GrowAGram/internal/service"

	"github.com/gin-gonic/gin"
)

// TimelineHandler 日期与生长天数互算，无需登录
type TimelineHandler struct {
	timelineSvc service.TimelineService
}

func NewTimelineHandler(timelineSvc service.TimelineService) *TimelineHandler {
	return &TimelineHandler{
		timelineSvc: timelineSvc,
	}
}

func (s *TimelineHandler) DateFromDay(c *gin.Context) {
	var req dto.TimelineDateQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.timelineSvc.DateFromDay(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *TimelineHandler) DayFromDate(c *gin.Context) {
	var req dto.TimelineDayQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.timelineSvc.DayFromDate(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// Form 对发帖表单执行一次日期或天数编辑
func (s *TimelineHandler) Form(c *gin.Context) {
	var req dto.TimelineFormDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.timelineSvc.ApplyEdit(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
