package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/consts"
	"GrowAGram/internal/pkg/seedfinder"
	"GrowAGram/internal/pkg/util"
	"GrowAGram/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type StrainService interface {
	GetAllStrains(ctx context.Context) ([]*dto.StrainDTO, error)
	GetStrainInfo(ctx context.Context, breederID, strainID string) (*dto.StrainDTO, error)
	SyncStrains(ctx context.Context) (int, error)
}

type StrainServiceImpl struct {
	strainRepo repository.StrainRepo
	lookup     StrainLookup
	cache      Cache
	now        func() time.Time
}

func NewStrainService(strainRepo repository.StrainRepo, lookup StrainLookup, cache Cache) StrainService {
	return &StrainServiceImpl{
		strainRepo: strainRepo,
		lookup:     lookup,
		cache:      cache,
		now:        time.Now,
	}
}

func (s *StrainServiceImpl) GetAllStrains(ctx context.Context) ([]*dto.StrainDTO, error) {
	strains, err := s.strainRepo.GetAllStrains(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.StrainDTO, 0, len(strains))
	for _, st := range strains {
		res = append(res, toStrainDTO(st))
	}
	return res, nil
}

// GetStrainInfo 缓存 -> Seedfinder -> 入库；查询失败时退回已存储的数据
func (s *StrainServiceImpl) GetStrainInfo(ctx context.Context, breederID, strainID string) (*dto.StrainDTO, error) {
	breederID, strainID = strings.TrimSpace(breederID), strings.TrimSpace(strainID)
	if breederID == "" || strainID == "" {
		return nil, ErrParamInvalid
	}

	key := strainCacheKey(breederID, strainID)
	if val, err := s.cache.Get(ctx, key); err == nil && val != "" {
		var cached dto.StrainDTO
		if err = json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	}

	strain, err := s.refresh(ctx, breederID, strainID)
	if err != nil {
		log.WarnContext(ctx, "strain lookup failed", "breeder_id", breederID, "strain_id", strainID, "err", err)
		stored, dbErr := s.strainRepo.GetStrain(ctx, breederID, strainID)
		if dbErr != nil {
			return nil, dbErr
		}
		if stored == nil {
			return nil, ErrStrainLookup
		}
		return toStrainDTO(stored), nil
	}

	res := toStrainDTO(strain)
	if b, err := json.Marshal(res); err == nil {
		if err = s.cache.Set(ctx, key, string(b), strainCacheTTL); err != nil {
			log.WarnContext(ctx, "cache strain failed", "key", key, "err", err)
		}
	}
	return res, nil
}

// SyncStrains 刷新所有已存储的品种，返回成功数量
func (s *StrainServiceImpl) SyncStrains(ctx context.Context) (int, error) {
	strains, err := s.strainRepo.GetAllStrains(ctx)
	if err != nil {
		return 0, err
	}
	synced := 0
	for _, st := range strains {
		if ctx.Err() != nil {
			return synced, ctx.Err()
		}
		if _, err = s.refresh(ctx, st.BreederID, st.StrainID); err != nil {
			log.WarnContext(ctx, "sync strain failed", "breeder_id", st.BreederID, "strain_id", st.StrainID, "err", err)
			continue
		}
		_ = s.cache.Delete(ctx, strainCacheKey(st.BreederID, st.StrainID))
		synced++
	}
	return synced, nil
}

func (s *StrainServiceImpl) refresh(ctx context.Context, breederID, strainID string) (*model.Strain, error) {
	info, err := s.lookup.GetStrainInfo(ctx, breederID, strainID)
	if err != nil {
		return nil, err
	}
	strain := toStrainModel(breederID, strainID, info)
	syncedAt := s.now().UTC()
	strain.SyncedAt = &syncedAt
	if err = s.strainRepo.UpsertStrain(ctx, strain); err != nil {
		return nil, err
	}
	return strain, nil
}

func toStrainModel(breederID, strainID string, info *seedfinder.StrainInfo) *model.Strain {
	name := info.Name
	if name == "" {
		name = strainID
	}
	return &model.Strain{
		BreederID:      breederID,
		StrainID:       strainID,
		Name:           name,
		BreederName:    info.Brinfo.Name,
		BreederLogoURL: info.Brinfo.Logo,
		FloweringDays:  info.Brinfo.Flowering.Days,
		CBD:            info.Brinfo.CBD,
		Description:    util.HTMLToText(info.Brinfo.Descr),
		PicURL:         info.Brinfo.Pic,
	}
}

func strainCacheKey(breederID, strainID string) string {
	return fmt.Sprintf("%s%s:%s", consts.StrainInfoKey, breederID, strainID)
}
