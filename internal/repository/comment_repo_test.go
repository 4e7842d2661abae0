package repository

import (
	"GrowAGram/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepo_DeleteCascadesToReplies(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "grower")
	repo := NewCommentRepo(db)

	root := &model.Comment{PostID: 1, AuthorID: user.ID, Content: "nice colas"}
	require.NoError(t, repo.CreateComment(ctx, root))
	reply := &model.Comment{PostID: 1, AuthorID: user.ID, ParentID: root.ID, Content: "thanks"}
	require.NoError(t, repo.CreateComment(ctx, reply))
	other := &model.Comment{PostID: 1, AuthorID: user.ID, Content: "what light?"}
	require.NoError(t, repo.CreateComment(ctx, other))

	count, err := repo.CountByPostID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, repo.DeleteComment(ctx, root.ID))

	list, err := repo.GetCommentsByPostID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "what light?", list[0].Content)
	assert.Equal(t, "grower", list[0].Author.Username)

	gone, err := repo.GetCommentByID(ctx, reply.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
