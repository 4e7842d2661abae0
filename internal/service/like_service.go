package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/consts"
	"GrowAGram/internal/pkg/mongo"
	"GrowAGram/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const likeCountTTL = 10 * time.Minute

type LikeService interface {
	Like(ctx context.Context, userID uint64, itemType string, itemID uint64) (int64, error)
	Unlike(ctx context.Context, userID uint64, itemType string, itemID uint64) (int64, error)
	GetLikesByItemID(ctx context.Context, itemType string, itemID uint64) (*dto.LikesResultDTO, error)
	CountLikes(ctx context.Context, itemType string, itemID uint64) (int64, error)
}

type LikeServiceImpl struct {
	likeRepo    repository.LikeRepo
	reportRepo  repository.ReportRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	cache       Cache
	publisher   EventPublisher
}

func NewLikeService(
	likeRepo repository.LikeRepo,
	reportRepo repository.ReportRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	cache Cache,
	publisher EventPublisher,
) LikeService {
	return &LikeServiceImpl{
		likeRepo:    likeRepo,
		reportRepo:  reportRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		cache:       cache,
		publisher:   publisher,
	}
}

func (s *LikeServiceImpl) Like(ctx context.Context, userID uint64, itemType string, itemID uint64) (int64, error) {
	itemType, err := normalizeItemType(itemType)
	if err != nil {
		return 0, err
	}
	authorID, err := s.itemAuthor(ctx, itemType, itemID)
	if err != nil {
		return 0, err
	}

	err = s.likeRepo.CreateLike(ctx, &model.Like{UserID: userID, ItemType: itemType, ItemID: itemID})
	if err != nil {
		if isDuplicateError(err) {
			return 0, ErrActionDuplicate
		}
		return 0, err
	}

	count := s.refreshCount(ctx, itemType, itemID)
	if authorID != userID {
		publish(ctx, s.publisher, &mongo.NotificationModel{
			ReceiverID: authorID,
			ActorID:    userID,
			Event:      mongo.EventLikeCreated,
			ItemType:   itemType,
			ItemID:     itemID,
		})
	}
	return count, nil
}

func (s *LikeServiceImpl) Unlike(ctx context.Context, userID uint64, itemType string, itemID uint64) (int64, error) {
	itemType, err := normalizeItemType(itemType)
	if err != nil {
		return 0, err
	}
	deleted, err := s.likeRepo.DeleteLike(ctx, userID, itemType, itemID)
	if err != nil {
		return 0, err
	}
	if !deleted {
		return 0, ErrLikeNotFound
	}
	return s.refreshCount(ctx, itemType, itemID), nil
}

func (s *LikeServiceImpl) GetLikesByItemID(ctx context.Context, itemType string, itemID uint64) (*dto.LikesResultDTO, error) {
	itemType, err := normalizeItemType(itemType)
	if err != nil {
		return nil, err
	}
	likes, err := s.likeRepo.GetLikesByItem(ctx, itemType, itemID)
	if err != nil {
		return nil, err
	}
	res := &dto.LikesResultDTO{
		Count: int64(len(likes)),
		Likes: make([]*dto.LikeDTO, 0, len(likes)),
	}
	for _, l := range likes {
		res.Likes = append(res.Likes, &dto.LikeDTO{
			UserID:    l.UserID,
			Name:      l.User.Name,
			CreatedAt: l.CreatedAt,
		})
	}
	return res, nil
}

// CountLikes 读穿缓存
func (s *LikeServiceImpl) CountLikes(ctx context.Context, itemType string, itemID uint64) (int64, error) {
	itemType, err := normalizeItemType(itemType)
	if err != nil {
		return 0, err
	}
	key := likeCountKey(itemType, itemID)
	if val, err := s.cache.Get(ctx, key); err == nil && val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n, nil
		}
	}
	count, err := s.likeRepo.CountByItem(ctx, itemType, itemID)
	if err != nil {
		return 0, err
	}
	if err = s.cache.Set(ctx, key, count, likeCountTTL); err != nil {
		log.WarnContext(ctx, "cache like count failed", "key", key, "err", err)
	}
	return count, nil
}

// refreshCount 重新计数并回写缓存与冗余列，失败只记录日志
func (s *LikeServiceImpl) refreshCount(ctx context.Context, itemType string, itemID uint64) int64 {
	count, err := s.likeRepo.CountByItem(ctx, itemType, itemID)
	if err != nil {
		log.WarnContext(ctx, "count likes failed", "item_type", itemType, "item_id", itemID, "err", err)
		_ = s.cache.Delete(ctx, likeCountKey(itemType, itemID))
		return 0
	}
	if err = s.cache.Set(ctx, likeCountKey(itemType, itemID), count, likeCountTTL); err != nil {
		log.WarnContext(ctx, "cache like count failed", "err", err)
	}
	switch itemType {
	case model.LikeItemReport:
		err = s.reportRepo.UpdateLikesCount(ctx, itemID, count)
	case model.LikeItemPost:
		err = s.postRepo.UpdateLikesCount(ctx, itemID, count)
	}
	if err != nil {
		log.WarnContext(ctx, "update likes count failed", "item_type", itemType, "item_id", itemID, "err", err)
	}
	return count
}

func (s *LikeServiceImpl) itemAuthor(ctx context.Context, itemType string, itemID uint64) (uint64, error) {
	switch itemType {
	case model.LikeItemReport:
		r, err := s.reportRepo.GetReport(ctx, itemID)
		if err != nil {
			return 0, err
		}
		if r == nil {
			return 0, ErrReportNotFound
		}
		return r.AuthorID, nil
	case model.LikeItemPost:
		p, err := s.postRepo.GetPost(ctx, itemID)
		if err != nil {
			return 0, err
		}
		if p == nil {
			return 0, ErrPostNotFound
		}
		return p.AuthorID, nil
	default:
		c, err := s.commentRepo.GetCommentByID(ctx, itemID)
		if err != nil {
			return 0, err
		}
		if c == nil {
			return 0, ErrCommentNotFound
		}
		return c.AuthorID, nil
	}
}

func normalizeItemType(itemType string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(itemType))
	switch t {
	case model.LikeItemReport, model.LikeItemPost, model.LikeItemComment:
		return t, nil
	}
	return "", ErrLikeItemType
}

func likeCountKey(itemType string, itemID uint64) string {
	return fmt.Sprintf("%s%s:%d", consts.LikeCountKey, itemType, itemID)
}

// isDuplicateError 唯一键冲突
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
