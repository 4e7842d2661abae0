package es

import (
	"GrowAGram/internal/pkg/util"
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type ReportRepo interface {
	SearchReports(ctx context.Context, keyword string, from, size int) ([]uint64, int64, error)
	IndexReport(ctx context.Context, report *ReportES) error
	DeleteReport(ctx context.Context, id uint64) error
}

type ReportRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewReportRepo(client *elasticsearch.TypedClient) ReportRepo {
	return &ReportRepoImpl{client: client}
}

// SearchReports 关键词检索，按相关度返回报告ID
func (s *ReportRepoImpl) SearchReports(ctx context.Context, keyword string, from, size int) ([]uint64, int64, error) {
	if from >= MaxSearchDepth {
		return []uint64{}, 0, nil
	}

	query := &types.Query{
		Bool: &types.BoolQuery{
			Should: []types.Query{
				{
					MultiMatch: &types.MultiMatchQuery{
						Query:  keyword,
						Fields: []string{"title^3", "strains^2", "description", "author_name"},
						Boost:  util.PtrFloat32(2.0),
					},
				},
				{
					MultiMatch: &types.MultiMatchQuery{
						Query:     keyword,
						Fields:    []string{"title", "description"},
						Fuzziness: util.PtrStr("AUTO"),
						Boost:     util.PtrFloat32(0.5),
					},
				},
			},
			MinimumShouldMatch: 1,
		},
	}

	resp, err := s.client.Search().
		Index(ReportIndex).
		Query(query).
		From(from).
		Size(size).
		Source_(&types.SourceFilter{Includes: []string{"id"}}).
		Do(ctx)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if resp.Hits.Total != nil {
		total = resp.Hits.Total.Value
	}

	ids := make([]uint64, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var doc struct {
			ID uint64 `json:"id"`
		}
		if err = json.Unmarshal(hit.Source_, &doc); err != nil {
			continue
		}
		ids = append(ids, doc.ID)
	}
	return ids, total, nil
}

func (s *ReportRepoImpl) IndexReport(ctx context.Context, report *ReportES) error {
	docID := strconv.FormatUint(report.ID, 10)
	_, err := s.client.Index(ReportIndex).
		Id(docID).
		Document(report).
		Do(ctx)
	return err
}

func (s *ReportRepoImpl) DeleteReport(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(ReportIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}
