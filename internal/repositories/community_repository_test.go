package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
)

func TestCommunityRepository_ToggleLikeAndComments(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	accounts := repositories.NewAccountRepository(db)
	community := repositories.NewCommunityRepository(db)

	author := &dbm.Account{FirstName: "Ada", LastName: "L", Email: "ada@example.com", PasswordHash: "x"}
	require.NoError(t, accounts.Insert(ctx, author))

	post := &dbm.CommunityPost{AccountID: author.ID, Title: "Paris in 4 days", Content: "..."}
	require.NoError(t, community.CreatePost(ctx, post))

	liked, count, err := community.ToggleLike(ctx, post.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	liked, count, err = community.ToggleLike(ctx, post.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)

	require.NoError(t, community.AddComment(ctx, &dbm.PostComment{PostID: post.ID, AccountID: author.ID, Content: "nice"}))

	got, err := community.FindPost(ctx, post.ID.String())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Account)
	assert.Equal(t, "Ada", got.Account.FirstName)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "nice", got.Comments[0].Content)
	assert.Empty(t, got.Likes)

	posts, err := community.ListPosts(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
