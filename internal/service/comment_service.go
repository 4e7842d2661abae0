package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/mongo"
	"GrowAGram/internal/pkg/util"
	"GrowAGram/internal/repository"
	"context"
	log "log/slog"
)

type CommentService interface {
	SaveComment(ctx context.Context, userID uint64, req *dto.CommentBaseDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	GetCommentsByPostID(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
	publisher   EventPublisher
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
	publisher EventPublisher,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// SaveComment ID 为 0 时新建，否则编辑自己的评论
func (s *CommentServiceImpl) SaveComment(ctx context.Context, userID uint64, req *dto.CommentBaseDTO) (*dto.CommentDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}
	if req.ID != 0 {
		return s.editComment(ctx, userID, req)
	}

	post, err := s.postRepo.GetPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	var parent *model.Comment
	if req.ParentID != 0 {
		parent, err = s.commentRepo.GetCommentByID(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostID != post.ID {
			return nil, ErrCommentNotFound
		}
	}

	comment := &model.Comment{
		PostID:   post.ID,
		AuthorID: userID,
		ParentID: req.ParentID,
		Content:  req.Content,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	s.refreshCount(ctx, post.ID)

	receivers := []uint64{post.AuthorID}
	if parent != nil {
		receivers = append(receivers, parent.AuthorID)
	}
	notified := make(map[uint64]struct{}, len(receivers))
	for _, receiver := range receivers {
		if receiver == userID {
			continue
		}
		if _, ok := notified[receiver]; ok {
			continue
		}
		notified[receiver] = struct{}{}
		publish(ctx, s.publisher, &mongo.NotificationModel{
			ReceiverID: receiver,
			ActorID:    userID,
			Event:      mongo.EventCommentCreated,
			ItemType:   model.LikeItemPost,
			ItemID:     post.ID,
			Excerpt:    util.Excerpt(comment.Content, notifyExcerpt),
		})
	}

	return s.withAuthor(ctx, comment), nil
}

func (s *CommentServiceImpl) editComment(ctx context.Context, userID uint64, req *dto.CommentBaseDTO) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return nil, UnauthorizedError
	}
	if err = s.commentRepo.UpdateCommentContent(ctx, comment.ID, req.Content); err != nil {
		return nil, err
	}
	comment.Content = req.Content
	return s.withAuthor(ctx, comment), nil
}

func (s *CommentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return UnauthorizedError
	}
	if err = s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	s.refreshCount(ctx, comment.PostID)
	return nil
}

func (s *CommentServiceImpl) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	comments, err := s.commentRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		res = append(res, toCommentDTO(c))
	}
	return res, nil
}

func (s *CommentServiceImpl) refreshCount(ctx context.Context, postID uint64) {
	count, err := s.commentRepo.CountByPostID(ctx, postID)
	if err == nil {
		err = s.postRepo.UpdateCommentsCount(ctx, postID, count)
	}
	if err != nil {
		log.WarnContext(ctx, "refresh comments count failed", "post_id", postID, "err", err)
	}
}

func (s *CommentServiceImpl) withAuthor(ctx context.Context, c *model.Comment) *dto.CommentDTO {
	if user, err := s.userRepo.GetUserById(ctx, c.AuthorID); err == nil && user != nil {
		c.Author = *user
	}
	return toCommentDTO(c)
}
