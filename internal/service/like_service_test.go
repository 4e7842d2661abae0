package service

import (
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/mongo"
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLikeFixture() (LikeService, *stubReportRepo, *stubPostRepo, *stubCache, *stubPublisher) {
	reports := newStubReportRepo(&model.Report{ID: 1, AuthorID: 5})
	posts := newStubPostRepo(&model.Post{ID: 2, ReportID: 1, AuthorID: 5})
	comments := newStubCommentRepo(&model.Comment{ID: 3, PostID: 2, AuthorID: 6})
	cache := newStubCache()
	pub := &stubPublisher{}
	svc := NewLikeService(newStubLikeRepo(), reports, posts, comments, cache, pub)
	return svc, reports, posts, cache, pub
}

func TestLikeAndUnlike(t *testing.T) {
	svc, reports, _, cache, pub := newLikeFixture()
	ctx := context.Background()

	count, err := svc.Like(ctx, 9, "report", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(1), reports.likesCounts[1])
	assert.Equal(t, "1", cache.data[likeCountKey(model.LikeItemReport, 1)])
	require.Len(t, pub.events, 1)
	assert.Equal(t, mongo.EventLikeCreated, pub.events[0].Event)
	assert.Equal(t, uint64(5), pub.events[0].ReceiverID)

	_, err = svc.Like(ctx, 9, "REPORT", 1)
	assert.ErrorIs(t, err, ErrActionDuplicate)

	count, err = svc.Unlike(ctx, 9, "REPORT", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, int64(0), reports.likesCounts[1])

	_, err = svc.Unlike(ctx, 9, "REPORT", 1)
	assert.ErrorIs(t, err, ErrLikeNotFound)
}

func TestLikeOwnItemDoesNotNotify(t *testing.T) {
	svc, _, posts, _, pub := newLikeFixture()

	_, err := svc.Like(context.Background(), 5, "post", 2)
	require.NoError(t, err)
	assert.Empty(t, pub.events)
	assert.Equal(t, int64(1), posts.likesCounts[2])
}

func TestLikeErrors(t *testing.T) {
	svc, _, _, _, _ := newLikeFixture()
	ctx := context.Background()

	_, err := svc.Like(ctx, 9, "user", 1)
	assert.ErrorIs(t, err, ErrLikeItemType)
	_, err = svc.Like(ctx, 9, "POST", 99)
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = svc.Like(ctx, 9, "COMMENT", 99)
	assert.ErrorIs(t, err, ErrCommentNotFound)
	_, err = svc.Like(ctx, 9, "REPORT", 99)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestCountLikesReadsThroughCache(t *testing.T) {
	svc, _, _, cache, _ := newLikeFixture()
	ctx := context.Background()

	_, err := svc.Like(ctx, 9, "COMMENT", 3)
	require.NoError(t, err)
	cache.data[likeCountKey(model.LikeItemComment, 3)] = "42"

	count, err := svc.CountLikes(ctx, "comment", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)

	delete(cache.data, likeCountKey(model.LikeItemComment, 3))
	count, err = svc.CountLikes(ctx, "comment", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	likes, err := svc.GetLikesByItemID(ctx, "COMMENT", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes.Count)
	assert.Equal(t, uint64(9), likes.Likes[0].UserID)
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, isDuplicateError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateError(&mysql.MySQLError{Number: 1062}))
	assert.False(t, isDuplicateError(&mysql.MySQLError{Number: 1452}))
	assert.False(t, isDuplicateError(errors.New("boom")))
}
