package es

import (
	"GrowAGram/internal/api/config"
	"GrowAGram/internal/pkg/logger"
	"context"
	log "log/slog"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

var Client *elasticsearch.TypedClient

var ReportIndex string

const (
	NotFoundCode = 404
	ConflictCode = 409
)

// InitClient 初始化 Elasticsearch 客户端并确保报告索引存在
func InitClient(elasticCfg config.ElasticConfig) error {
	ReportIndex = elasticCfg.Indices.ReportIndex

	cfg := elasticsearch.Config{
		Addresses: []string{elasticCfg.Address},
		Username:  elasticCfg.Username,
		Password:  elasticCfg.Password,
		Transport: &logger.ESTransport{
			Transport: http.DefaultTransport,
		},
	}

	var err error
	Client, err = elasticsearch.NewTypedClient(cfg)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	ctx := context.Background()
	info, err := Client.Info().Do(ctx)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}
	log.Info("Connected to Elasticsearch", "version", info.Version.Int)

	return ensureReportIndex(ctx)
}

func ensureReportIndex(ctx context.Context) error {
	exists, err := Client.Indices.Exists(ReportIndex).Do(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = Client.Indices.Create(ReportIndex).
		Mappings(&types.TypeMapping{
			Properties: map[string]types.Property{
				"id":          types.NewLongNumberProperty(),
				"author_id":   types.NewLongNumberProperty(),
				"author_name": types.NewTextProperty(),
				"title":       types.NewTextProperty(),
				"description": types.NewTextProperty(),
				"environment": types.NewKeywordProperty(),
				"strains":     types.NewTextProperty(),
				"start_date":  types.NewDateProperty(),
				"created_at":  types.NewDateProperty(),
				"updated_at":  types.NewDateProperty(),
			},
		}).
		Do(ctx)
	if err != nil {
		return err
	}
	log.Info("Elasticsearch index created", "index", ReportIndex)
	return nil
}
