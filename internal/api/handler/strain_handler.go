package handler

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/pkg/response"
	"GrowAGram/internal/service"

	"github.com/gin-gonic/gin"
)

type StrainHandler struct {
	strainSvc service.StrainService
}

func NewStrainHandler(strainSvc service.StrainService) *StrainHandler {
	return &StrainHandler{
		strainSvc: strainSvc,
	}
}

func (s *StrainHandler) GetAllStrains(c *gin.Context) {
	res, err := s.strainSvc.GetAllStrains(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *StrainHandler) GetStrainInfo(c *gin.Context) {
	var req dto.StrainInfoQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.strainSvc.GetStrainInfo(c.Request.Context(), req.BreederID, req.StrainID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
