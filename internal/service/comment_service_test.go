package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/mongo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture() (CommentService, *stubCommentRepo, *stubPostRepo, *stubPublisher) {
	comments := newStubCommentRepo()
	posts := newStubPostRepo(&model.Post{ID: 1, ReportID: 1, AuthorID: 10})
	users := newStubUserRepo(
		&model.User{ID: 10, Name: "Author"},
		&model.User{ID: 11, Name: "Alice"},
		&model.User{ID: 12, Name: "Bob"},
	)
	pub := &stubPublisher{}
	return NewCommentService(comments, posts, users, pub), comments, posts, pub
}

func TestSaveCommentNotifiesAuthors(t *testing.T) {
	svc, _, posts, pub := newCommentFixture()
	ctx := context.Background()

	top, err := svc.SaveComment(ctx, 11, &dto.CommentBaseDTO{PostID: 1, Content: "Looks great"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", top.Author.Name)
	require.Len(t, pub.events, 1)
	assert.Equal(t, uint64(10), pub.events[0].ReceiverID)
	assert.Equal(t, mongo.EventCommentCreated, pub.events[0].Event)

	_, err = svc.SaveComment(ctx, 12, &dto.CommentBaseDTO{PostID: 1, ParentID: top.ID, Content: "Agreed"})
	require.NoError(t, err)
	require.Len(t, pub.events, 3)
	assert.ElementsMatch(t, []uint64{10, 11}, []uint64{pub.events[1].ReceiverID, pub.events[2].ReceiverID})
	assert.Equal(t, int64(2), posts.commentsCounts[1])

	// 作者回复自己帖子下的评论，只通知被回复者
	_, err = svc.SaveComment(ctx, 10, &dto.CommentBaseDTO{PostID: 1, ParentID: top.ID, Content: "Thanks"})
	require.NoError(t, err)
	require.Len(t, pub.events, 4)
	assert.Equal(t, uint64(11), pub.events[3].ReceiverID)
}

func TestSaveCommentErrors(t *testing.T) {
	svc, _, _, _ := newCommentFixture()
	ctx := context.Background()

	_, err := svc.SaveComment(ctx, 11, &dto.CommentBaseDTO{PostID: 2, Content: "x"})
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.SaveComment(ctx, 11, &dto.CommentBaseDTO{PostID: 1, ParentID: 42, Content: "x"})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestEditAndDeleteComment(t *testing.T) {
	svc, comments, posts, _ := newCommentFixture()
	ctx := context.Background()

	c, err := svc.SaveComment(ctx, 11, &dto.CommentBaseDTO{PostID: 1, Content: "first"})
	require.NoError(t, err)

	_, err = svc.SaveComment(ctx, 12, &dto.CommentBaseDTO{ID: c.ID, PostID: 1, Content: "hijack"})
	assert.ErrorIs(t, err, UnauthorizedError)

	edited, err := svc.SaveComment(ctx, 11, &dto.CommentBaseDTO{ID: c.ID, PostID: 1, Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", edited.Content)
	assert.Equal(t, "edited", comments.comments[c.ID].Content)

	_, err = svc.SaveComment(ctx, 12, &dto.CommentBaseDTO{PostID: 1, ParentID: c.ID, Content: "reply"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteComment(ctx, 12, c.ID), UnauthorizedError)
	require.NoError(t, svc.DeleteComment(ctx, 11, c.ID))
	assert.Equal(t, int64(0), posts.commentsCounts[1])

	list, err := svc.GetCommentsByPostID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}
