package seedfinder

import (
	"GrowAGram/internal/api/config"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ErrLookup 品种数据库查询失败
var ErrLookup = errors.New("seedfinder lookup failed")

// StrainInfo strain.json 接口的返回体
type StrainInfo struct {
	Error  bool        `json:"error"`
	Info   string      `json:"info"` // 出错时的描述
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Brinfo BreederInfo `json:"brinfo"`
	Links  Links       `json:"links"`
}

type BreederInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo"`
	Type      string    `json:"type"`
	CBD       string    `json:"cbd"`
	Descr     string    `json:"descr"` // HTML
	Pic       string    `json:"pic"`
	Flowering Flowering `json:"flowering"`
}

type Flowering struct {
	Auto bool   `json:"auto"`
	Days int    `json:"days"`
	Info string `json:"info"`
}

type Links struct {
	Info string `json:"info"`
}

// Client Seedfinder 接口客户端
type Client struct {
	http   *resty.Client
	apiKey string
}

func NewClient(cfg config.SeedfinderConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200*time.Millisecond).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "GrowAGram/1.0").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &Client{http: client, apiKey: cfg.ApiKey}
}

// GetStrainInfo 按 breeder/strain 标识查询品种信息
func (c *Client) GetStrainInfo(ctx context.Context, breederID, strainID string) (*StrainInfo, error) {
	if breederID == "" || strainID == "" {
		return nil, errors.Wrap(ErrLookup, "breeder id and strain id are required")
	}

	var info StrainInfo
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"br":  breederID,
			"str": strainID,
			"ac":  c.apiKey,
			"lng": "en",
		}).
		SetResult(&info).
		ForceContentType("application/json").
		Get("/strain.json")
	if err != nil {
		return nil, errors.Wrapf(ErrLookup, "request %s/%s: %v", breederID, strainID, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Wrapf(ErrLookup, "unexpected status %d", resp.StatusCode())
	}
	if info.Error {
		return nil, errors.Wrapf(ErrLookup, "seedfinder: %s", info.Info)
	}
	return &info, nil
}
