package handler

import (
	"GrowAGram/internal/pkg/response"
	"GrowAGram/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeSvc service.LikeService
}

func NewLikeHandler(likeSvc service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeSvc: likeSvc,
	}
}

func (s *LikeHandler) GetLikes(c *gin.Context) {
	itemID, err := pathID(c, "item_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.likeSvc.GetLikesByItemID(c.Request.Context(), c.Param("item_type"), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *LikeHandler) Like(c *gin.Context) {
	itemID, err := pathID(c, "item_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	count, err := s.likeSvc.Like(c.Request.Context(), c.GetUint64("user_id"), c.Param("item_type"), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}

func (s *LikeHandler) Unlike(c *gin.Context) {
	itemID, err := pathID(c, "item_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	count, err := s.likeSvc.Unlike(c.Request.Context(), c.GetUint64("user_id"), c.Param("item_type"), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}

func (s *LikeHandler) CountLikes(c *gin.Context) {
	itemID, err := pathID(c, "item_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	count, err := s.likeSvc.CountLikes(c.Request.Context(), c.Param("item_type"), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}
