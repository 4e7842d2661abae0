package repository

import (
	"GrowAGram/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepo_CreateAndReplaceImages(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "grower")
	report := seedReport(t, db, user.ID, day(2024, 1, 1))
	repo := NewPostRepository(db)

	post := &model.Post{ReportID: report.ID, AuthorID: user.ID, Date: day(2024, 1, 11), GrowDay: 10, Title: "Day 10", Content: "<p>ok</p>", GrowStage: "SEEDLING_STAGE"}
	images := []*model.PostImage{
		{ObjectKey: "2024/01/11/a.jpg", MimeType: "image/jpeg"},
		{ObjectKey: "2024/01/11/b.png", MimeType: "image/png"},
	}
	require.NoError(t, repo.CreatePost(ctx, post, images))

	got, err := repo.GetPost(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Images, 2)
	assert.Equal(t, "2024/01/11/a.jpg", got.Images[0].ObjectKey)
	assert.Equal(t, int8(1), got.Images[1].SortOrder)

	hours := 18
	post.Title = "Day 10 edited"
	post.LightHoursPerDay = &hours
	require.NoError(t, repo.UpdatePost(ctx, post, []*model.PostImage{{ObjectKey: "2024/01/12/c.webp", MimeType: "image/webp"}}))

	got, err = repo.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Day 10 edited", got.Title)
	require.NotNil(t, got.LightHoursPerDay)
	assert.Equal(t, 18, *got.LightHoursPerDay)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "2024/01/12/c.webp", got.Images[0].ObjectKey)
}

func TestPostRepo_ExistsOnDate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "grower")
	report := seedReport(t, db, user.ID, day(2024, 1, 1))
	repo := NewPostRepository(db)

	post := &model.Post{ReportID: report.ID, AuthorID: user.ID, Date: day(2024, 1, 2), GrowDay: 1, Title: "t", Content: "c", GrowStage: "GERMINANTION_STAGE"}
	require.NoError(t, repo.CreatePost(ctx, post, nil))

	exists, err := repo.ExistsOnDate(ctx, report.ID, day(2024, 1, 2), 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsOnDate(ctx, report.ID, day(2024, 1, 2), post.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsOnDate(ctx, report.ID, day(2024, 1, 3), 0)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.DeletePost(ctx, post.ID))
	exists, err = repo.ExistsOnDate(ctx, report.ID, day(2024, 1, 2), 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPostRepo_OrderedByDate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "grower")
	report := seedReport(t, db, user.ID, day(2024, 1, 1))
	repo := NewPostRepository(db)

	for _, d := range []int{9, 3, 6} {
		p := &model.Post{ReportID: report.ID, AuthorID: user.ID, Date: day(2024, 1, d), Title: "t", Content: "c", GrowStage: "VEGETATIVE_STAGE"}
		require.NoError(t, repo.CreatePost(ctx, p, nil))
	}

	list, err := repo.GetPostsByReportID(ctx, report.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 3, list[0].Date.Day())
	assert.Equal(t, 6, list[1].Date.Day())
	assert.Equal(t, 9, list[2].Date.Day())
}
