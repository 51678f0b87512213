package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type communityFixture struct {
	svc    CommunityServiceInterface
	author *dbm.Account
	other  *dbm.Account
	trip   *dbm.Trip
}

func newCommunityFixture(t *testing.T) communityFixture {
	t.Helper()
	ctx := context.Background()
	db := newTestDB(t)

	accounts := repositories.NewAccountRepository(db)
	trips := repositories.NewTripRepository(db)

	author := &dbm.Account{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: "x"}
	other := &dbm.Account{FirstName: "Charles", Email: "charles@example.com", PasswordHash: "x"}
	require.NoError(t, accounts.Insert(ctx, author))
	require.NoError(t, accounts.Insert(ctx, other))

	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	trip := &dbm.Trip{AccountID: author.ID, Title: "Paris", StartDate: start, EndDate: start.AddDate(0, 0, 3)}
	require.NoError(t, trips.Create(ctx, trip))

	return communityFixture{
		svc:    NewCommunityService(repositories.NewCommunityRepository(db), trips),
		author: author,
		other:  other,
		trip:   trip,
	}
}

func TestCommunityService_PostLikeComment(t *testing.T) {
	ctx := context.Background()
	f := newCommunityFixture(t)
	tripID := f.trip.ID.String()

	post, err := f.svc.CreatePost(ctx, f.author.ID.String(), request_models.CreatePostRequest{
		Title:   "  Four days in Paris ",
		Content: "Louvre first, then Montmartre.",
		TripID:  &tripID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Four days in Paris", post.Title)
	require.NotNil(t, post.TripID)
	assert.Equal(t, tripID, *post.TripID)
	assert.NotNil(t, post.Images)

	like, err := f.svc.ToggleLike(ctx, f.other.ID.String(), post.ID)
	require.NoError(t, err)
	assert.True(t, like.Liked)
	assert.Equal(t, int64(1), like.LikeCount)

	comment, err := f.svc.AddComment(ctx, f.other.ID.String(), post.ID, request_models.CommentRequest{Content: " lovely "})
	require.NoError(t, err)
	assert.Equal(t, "lovely", comment.Content)

	got, err := f.svc.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.UserName)
	assert.Equal(t, 1, got.LikeCount)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Charles", got.Comments[0].UserName)

	list, err := f.svc.ListPosts(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = f.svc.ListPosts(ctx, 2, 20)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCommunityService_Errors(t *testing.T) {
	ctx := context.Background()
	f := newCommunityFixture(t)
	tripID := f.trip.ID.String()
	missingTrip := uuid.NewString()

	_, err := f.svc.CreatePost(ctx, f.other.ID.String(), request_models.CreatePostRequest{
		Title: "not mine", Content: "c", TripID: &tripID,
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = f.svc.CreatePost(ctx, f.author.ID.String(), request_models.CreatePostRequest{
		Title: "t", Content: "c", TripID: &missingTrip,
	})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	_, err = f.svc.CreatePost(ctx, f.author.ID.String(), request_models.CreatePostRequest{Title: " ", Content: "c"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = f.svc.CreatePost(ctx, "", request_models.CreatePostRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	_, err = f.svc.GetPost(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrPostNotFound)

	_, err = f.svc.ToggleLike(ctx, f.author.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
}
