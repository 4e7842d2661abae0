package handler

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/pkg/response"
	"GrowAGram/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

func (s *CommentHandler) GetComments(c *gin.Context) {
	postID, err := pathID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.commentSvc.GetCommentsByPostID(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// SaveComment 新建或编辑评论
func (s *CommentHandler) SaveComment(c *gin.Context) {
	var req dto.CommentBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.commentSvc.SaveComment(c.Request.Context(), c.GetUint64("user_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := pathID(c, "comment_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.commentSvc.DeleteComment(c.Request.Context(), c.GetUint64("user_id"), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
