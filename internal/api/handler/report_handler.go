package handler

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/pkg/response"
	"GrowAGram/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
	}
}

func (s *ReportHandler) GetAllReports(c *gin.Context) {
	var req dto.ReportListDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.reportSvc.GetAllReports(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// GetReport 报告详情及全部帖子
func (s *ReportHandler) GetReport(c *gin.Context) {
	reportID, err := pathID(c, "report_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.reportSvc.GetReportWithPosts(c.Request.Context(), reportID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *ReportHandler) GetOwnReports(c *gin.Context) {
	res, err := s.reportSvc.GetOwnReports(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *ReportHandler) CreateReport(c *gin.Context) {
	var req dto.ReportBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.reportSvc.CreateReport(c.Request.Context(), c.GetUint64("user_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *ReportHandler) SaveReport(c *gin.Context) {
	reportID, err := pathID(c, "report_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ReportBaseDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.reportSvc.SaveReport(c.Request.Context(), c.GetUint64("user_id"), reportID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *ReportHandler) DeleteReport(c *gin.Context) {
	reportID, err := pathID(c, "report_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.reportSvc.DeleteReport(c.Request.Context(), c.GetUint64("user_id"), reportID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
