package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/pkg/consts"
	"GrowAGram/internal/pkg/minio"
	"GrowAGram/internal/pkg/mongo"
	"GrowAGram/internal/pkg/redis"
	"GrowAGram/internal/pkg/seedfinder"
	"context"
	"io"
	"time"

	"github.com/goccy/go-json"
)

// EventPublisher 通知事件发布，Kafka 生产者或直接写库
type EventPublisher interface {
	Publish(ctx context.Context, n *mongo.NotificationModel) error
}

// Cache 简单的键值缓存，未命中返回空串
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MediaRegistry 已上传但未被引用的临时图片登记表
type MediaRegistry interface {
	Lookup(ctx context.Context, key string) (*dto.MediaTempMetadata, error)
	Register(ctx context.Context, key string, meta *dto.MediaTempMetadata) error
	Claim(ctx context.Context, keys ...string) error
	Discard(ctx context.Context, keys ...string) error
	All(ctx context.Context) (map[string]*dto.MediaTempMetadata, error)
}

// ObjectStore 对象存储
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// StrainLookup 第三方品种数据库
type StrainLookup interface {
	GetStrainInfo(ctx context.Context, breederID, strainID string) (*seedfinder.StrainInfo, error)
}

type redisCache struct{}

func NewRedisCache() Cache {
	return &redisCache{}
}

func (s *redisCache) Get(ctx context.Context, key string) (string, error) {
	return redis.GetValue(ctx, key)
}

func (s *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return redis.SetWithExpiration(ctx, key, value, ttl)
}

func (s *redisCache) Delete(ctx context.Context, key string) error {
	return redis.DeleteKey(ctx, key)
}

type minioStore struct{}

func NewMinioStore() ObjectStore {
	return &minioStore{}
}

func (s *minioStore) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := minio.UploadFile(ctx, key, r, size, contentType)
	return err
}

func (s *minioStore) Delete(ctx context.Context, key string) error {
	return minio.DeleteFile(ctx, key)
}

func (s *minioStore) PublicURL(key string) string {
	return minio.GetPublicURL(key)
}

// redisMediaRegistry 元数据存放在 Redis 哈希 consts.MediaTempKey
type redisMediaRegistry struct {
	store ObjectStore
}

func NewMediaRegistry(store ObjectStore) MediaRegistry {
	return &redisMediaRegistry{store: store}
}

func (s *redisMediaRegistry) Lookup(ctx context.Context, key string) (*dto.MediaTempMetadata, error) {
	val, err := redis.HGet(ctx, consts.MediaTempKey, key)
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, nil
	}
	var meta dto.MediaTempMetadata
	if err = json.Unmarshal([]byte(val), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *redisMediaRegistry) Register(ctx context.Context, key string, meta *dto.MediaTempMetadata) error {
	b, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return redis.HSet(ctx, consts.MediaTempKey, key, string(b))
}

func (s *redisMediaRegistry) Claim(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return redis.HDel(ctx, consts.MediaTempKey, keys...)
}

// Discard 删除对象及其缩略图并注销
func (s *redisMediaRegistry) Discard(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			return err
		}
		if err := s.store.Delete(ctx, thumbnailKey(key)); err != nil {
			return err
		}
	}
	return s.Claim(ctx, keys...)
}

func (s *redisMediaRegistry) All(ctx context.Context) (map[string]*dto.MediaTempMetadata, error) {
	vals, err := redis.HGetAll(ctx, consts.MediaTempKey)
	if err != nil {
		return nil, err
	}
	res := make(map[string]*dto.MediaTempMetadata, len(vals))
	for key, val := range vals {
		var meta dto.MediaTempMetadata
		if err = json.Unmarshal([]byte(val), &meta); err != nil {
			continue
		}
		res[key] = &meta
	}
	return res, nil
}

type directPublisher struct {
	repo mongo.NotificationRepo
}

// NewDirectPublisher 未启用 Kafka 时直接写入 MongoDB
func NewDirectPublisher(repo mongo.NotificationRepo) EventPublisher {
	return &directPublisher{repo: repo}
}

func (s *directPublisher) Publish(ctx context.Context, n *mongo.NotificationModel) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	return s.repo.CreateNotification(ctx, n)
}
