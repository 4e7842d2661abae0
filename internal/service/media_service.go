package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/pkg/util"
	"bytes"
	"context"
	"fmt"
	"io"
	log "log/slog"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultMaxImageBytes 4.5 MB
	DefaultMaxImageBytes int64 = 4718592
	thumbnailWidth             = 480
	thumbnailSuffix            = "_thumb.jpg"
)

type MediaService interface {
	UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.MediaUploadResultDTO, error)
	UploadImageData(ctx context.Context, data []byte) (*dto.MediaUploadResultDTO, error)
	CleanupExpired(ctx context.Context, maxAge time.Duration) (int, error)
}

type MediaServiceImpl struct {
	store    ObjectStore
	registry MediaRegistry
	maxBytes int64
	now      func() time.Time
}

func NewMediaService(store ObjectStore, registry MediaRegistry, maxBytes int64) MediaService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &MediaServiceImpl{
		store:    store,
		registry: registry,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

func (s *MediaServiceImpl) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.MediaUploadResultDTO, error) {
	if fileHeader == nil {
		return nil, ErrFileNotExist
	}
	if fileHeader.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		return nil, err
	}
	return s.UploadImageData(ctx, data)
}

// UploadImageData 校验并上传图片，登记为临时文件等待帖子或报告引用
func (s *MediaServiceImpl) UploadImageData(ctx context.Context, data []byte) (*dto.MediaUploadResultDTO, error) {
	if int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}
	info, ok := util.InspectImage(data)
	if !ok {
		return nil, ErrFileNotSupported
	}

	now := s.now()
	key := fmt.Sprintf("%s/%s%s", now.Format("2006/01/02"), uuid.NewString(), info.Extension)
	if err := s.store.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), info.MimeType); err != nil {
		return nil, err
	}

	meta := &dto.MediaTempMetadata{
		MimeType:  info.MimeType,
		Width:     info.Width,
		Height:    info.Height,
		Size:      int64(len(data)),
		CreatedAt: now.Unix(),
	}
	if info.Image != nil {
		var buf bytes.Buffer
		if err := util.Thumbnail(info.Image, thumbnailWidth, &buf); err != nil {
			log.WarnContext(ctx, "make thumbnail failed", "key", key, "err", err)
		} else if err = s.store.Upload(ctx, thumbnailKey(key), &buf, int64(buf.Len()), "image/jpeg"); err != nil {
			log.WarnContext(ctx, "upload thumbnail failed", "key", key, "err", err)
		} else {
			meta.Thumbnail = thumbnailKey(key)
		}
	}

	if err := s.registry.Register(ctx, key, meta); err != nil {
		_ = s.store.Delete(ctx, key)
		return nil, err
	}

	res := &dto.MediaUploadResultDTO{
		ImageID: key,
		URL:     s.store.PublicURL(key),
		Mime:    meta.MimeType,
		Width:   meta.Width,
		Height:  meta.Height,
		Size:    meta.Size,
	}
	if meta.Thumbnail != "" {
		res.ThumbnailURL = s.store.PublicURL(meta.Thumbnail)
	}
	return res, nil
}

// CleanupExpired 删除超过 maxAge 仍未被引用的上传，返回删除数量
func (s *MediaServiceImpl) CleanupExpired(ctx context.Context, maxAge time.Duration) (int, error) {
	all, err := s.registry.All(ctx)
	if err != nil {
		return 0, err
	}
	deadline := s.now().Add(-maxAge).Unix()
	removed := 0
	for key, meta := range all {
		if meta.CreatedAt > deadline {
			continue
		}
		if err = s.registry.Discard(ctx, key); err != nil {
			log.WarnContext(ctx, "discard expired media failed", "key", key, "err", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// thumbnailKey 2024/01/02/xxx.png -> 2024/01/02/xxx_thumb.jpg
func thumbnailKey(key string) string {
	return strings.TrimSuffix(key, path.Ext(key)) + thumbnailSuffix
}
