package handler

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/pkg/response"
	"GrowAGram/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) GetPostsByReport(c *gin.Context) {
	reportID, err := pathID(c, "report_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.postSvc.GetPostsByReportID(c.Request.Context(), reportID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := pathID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.postSvc.CreatePost(c.Request.Context(), c.GetUint64("user_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := pathID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.PostBaseDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.postSvc.UpdatePost(c.Request.Context(), c.GetUint64("user_id"), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := pathID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.postSvc.DeletePost(c.Request.Context(), c.GetUint64("user_id"), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetPostForm 新建或编辑帖子时的预填表单，postId 为空表示新建
func (s *PostHandler) GetPostForm(c *gin.Context) {
	reportID, err := pathID(c, "report_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var postID uint64
	if raw := c.Query("postId"); raw != "" {
		if postID, err = strconv.ParseUint(raw, 10, 64); err != nil {
			response.Error(c, err)
			return
		}
	}
	form, err := s.postSvc.NewPostForm(c.Request.Context(), c.GetUint64("user_id"), reportID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, form)
}
