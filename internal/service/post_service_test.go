package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/mongo"
	"GrowAGram/internal/pkg/util"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newPostFixture(t *testing.T) (*PostServiceImpl, *stubPostRepo, *stubMedia, *stubPublisher) {
	t.Helper()
	reports := newStubReportRepo(&model.Report{ID: 1, AuthorID: 7, StartDate: utcDay(2024, 1, 1)})
	posts := newStubPostRepo()
	media := newStubMedia("a.png", "b.png")
	pub := &stubPublisher{}
	svc := NewPostService(posts, reports, media, pub, time.UTC).(*PostServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC) }
	return svc, posts, media, pub
}

func postReq(date string, images ...string) *dto.PostBaseDTO {
	return &dto.PostBaseDTO{
		ReportID:  1,
		Date:      date,
		Title:     "Day entry",
		Content:   "<p>Watered <b>1L</b></p>",
		GrowStage: "VEGETATIVE_STAGE",
		Images:    images,
	}
}

func TestCreatePostComputesGrowDay(t *testing.T) {
	svc, posts, media, pub := newPostFixture(t)
	ctx := context.Background()

	res, err := svc.CreatePost(ctx, 7, postReq("2024-01-08", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-08", res.Date)
	assert.Equal(t, 7, res.GrowDay)
	assert.Equal(t, "Watered 1L", res.Excerpt)
	require.Len(t, res.Images, 1)
	assert.Equal(t, "a.png", res.Images[0].ObjectKey)

	assert.Equal(t, 7, posts.posts[res.ID].GrowDay)
	assert.Equal(t, []string{"a.png"}, media.claimed)
	require.Len(t, pub.events, 1)
	assert.Equal(t, mongo.EventPostCreated, pub.events[0].Event)
	assert.Equal(t, uint64(7), pub.events[0].ReceiverID)
}

func TestCreatePostRejections(t *testing.T) {
	tests := []struct {
		name   string
		userID uint64
		req    *dto.PostBaseDTO
		want   error
	}{
		{"before start", 7, postReq("2023-12-31"), ErrPostBeforeReportStart},
		{"not owner", 8, postReq("2024-01-02"), UnauthorizedError},
		{"unknown image", 7, postReq("2024-01-02", "missing.png"), ErrFileNotExist},
		{"bad date", 7, postReq("2024-13-01"), util.ErrValidation},
		{"missing report", 7, &dto.PostBaseDTO{ReportID: 9, Date: "2024-01-02", Title: "t", Content: "c", GrowStage: "SEEDLING_STAGE"}, ErrReportNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newPostFixture(t)
			_, err := svc.CreatePost(context.Background(), tt.userID, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreatePostOnePerDay(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, 7, postReq("2024-01-05"))
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, 7, postReq("2024-01-05"))
	assert.ErrorIs(t, err, ErrOnePostPerDay)
}

func TestUpdatePostKeepsOwnDateAndDiscardsRemovedImages(t *testing.T) {
	svc, _, media, _ := newPostFixture(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, 7, postReq("2024-01-05", "a.png"))
	require.NoError(t, err)

	updated, err := svc.UpdatePost(ctx, 7, created.ID, postReq("2024-01-05", "b.png"))
	require.NoError(t, err)
	assert.Equal(t, 4, updated.GrowDay)
	require.Len(t, updated.Images, 1)
	assert.Equal(t, "b.png", updated.Images[0].ObjectKey)
	assert.Equal(t, []string{"a.png"}, media.discarded)

	moved, err := svc.UpdatePost(ctx, 7, created.ID, postReq("2024-01-20", "b.png"))
	require.NoError(t, err)
	assert.Equal(t, 19, moved.GrowDay)
}

func TestGetPostsRecomputeGrowDay(t *testing.T) {
	reports := newStubReportRepo(&model.Report{ID: 1, AuthorID: 7, StartDate: utcDay(2024, 1, 3)})
	posts := newStubPostRepo(
		&model.Post{ID: 1, ReportID: 1, Date: utcDay(2024, 1, 5), GrowDay: 99},
		&model.Post{ID: 2, ReportID: 1, Date: utcDay(2024, 1, 3), GrowDay: 99},
	)
	svc := NewPostService(posts, reports, newStubMedia(), nil, time.UTC)

	list, err := svc.GetPostsByReportID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 0, list[0].GrowDay)
	assert.Equal(t, 2, list[1].GrowDay)
}

func TestGrowDayUsesTimelineLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// 纽约 1 月 1 日零点
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).UTC()
	reports := newStubReportRepo(&model.Report{ID: 1, AuthorID: 7, StartDate: start})
	svc := NewPostService(newStubPostRepo(), reports, newStubMedia(), nil, loc)

	res, err := svc.CreatePost(context.Background(), 7, postReq("2024-03-15"))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", res.Date)
	assert.Equal(t, 74, res.GrowDay)
}

func TestNewPostForm(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)
	ctx := context.Background()

	form, err := svc.NewPostForm(ctx, 7, 1, 0)
	require.NoError(t, err)
	assert.True(t, utcDay(2024, 1, 10).Equal(form.Date))
	assert.Equal(t, 9, form.GrowDay)

	created, err := svc.CreatePost(ctx, 7, postReq("2024-01-04", "a.png"))
	require.NoError(t, err)
	form, err = svc.NewPostForm(ctx, 7, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, form.GrowDay)
	assert.Equal(t, "Day entry", form.Title)
	assert.Equal(t, []string{"a.png"}, form.Images)

	_, err = svc.NewPostForm(ctx, 8, 1, 0)
	assert.ErrorIs(t, err, UnauthorizedError)
}

func TestDeletePostOwnerOnly(t *testing.T) {
	svc, posts, _, _ := newPostFixture(t)
	ctx := context.Background()
	created, err := svc.CreatePost(ctx, 7, postReq("2024-01-04"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePost(ctx, 8, created.ID), UnauthorizedError)
	require.NoError(t, svc.DeletePost(ctx, 7, created.ID))
	assert.Empty(t, posts.posts)
	assert.ErrorIs(t, svc.DeletePost(ctx, 7, created.ID), ErrPostNotFound)
}

func TestDeletePostDiscardsImages(t *testing.T) {
	svc, _, media, _ := newPostFixture(t)
	ctx := context.Background()
	created, err := svc.CreatePost(ctx, 7, postReq("2024-01-04", "a.png", "b.png"))
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, 7, created.ID))
	assert.ElementsMatch(t, []string{"a.png", "b.png"}, media.discarded)
}
