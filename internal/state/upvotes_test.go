package state

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/errors"
	"github.com/bookclubapp/bookclub-client/internal/logger"
)

func TestUpvotesLoadOne(t *testing.T) {
	stub := newStub(t).reply("/api/Upvoting/_getUpvotesByItem", []domain.Vote{
		{ID: "v1", User: "u1", Item: "p1"},
		{ID: "v2", User: "u2", Item: "p1"},
		{ID: "v3", User: "u3", Item: "p1"},
	})
	u := NewUpvotes(stub.gateway(t), logger.Discard().Logger)

	require.NoError(t, u.LoadOne(context.Background(), "p1", "u2"))
	assert.Equal(t, domain.VoteSummary{Count: 3, UserVoted: true}, u.For("p1"))

	require.NoError(t, u.LoadOne(context.Background(), "p1", "u9"))
	assert.Equal(t, domain.VoteSummary{Count: 3, UserVoted: false}, u.For("p1"))

	// Anonymous viewers never show as having voted.
	require.NoError(t, u.LoadOne(context.Background(), "p1", ""))
	assert.False(t, u.For("p1").UserVoted)
}

func TestUpvotesLoadOneFailureDegradesToZero(t *testing.T) {
	stub := newStub(t).reply("/api/Upvoting/_getUpvotesByItem", []domain.Vote{
		{ID: "v1", User: "u1", Item: "p1"},
	})
	u := NewUpvotes(stub.gateway(t), logger.Discard().Logger)
	require.NoError(t, u.LoadOne(context.Background(), "p1", "u1"))

	stub.fail("/api/Upvoting/_getUpvotesByItem", http.StatusInternalServerError, "boom")
	require.Error(t, u.LoadOne(context.Background(), "p1", "u1"))
	assert.Equal(t, domain.VoteSummary{}, u.For("p1"))
}

func TestUpvotesLoadMany(t *testing.T) {
	stub := newStub(t).on("/api/Upvoting/_getUpvotesByItem", func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Item string `json:"item"`
		}
		decodeBody(t, r, &params)
		if params.Item == "p2" {
			writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "boom"})
			return
		}
		writeJSON(t, w, http.StatusOK, []domain.Vote{{ID: "v-" + params.Item, User: "u1", Item: params.Item}})
	})
	u := NewUpvotes(stub.gateway(t), logger.Discard().Logger)

	require.NoError(t, u.LoadMany(context.Background(), []string{"p1", "p2", "p3"}, "u1"))

	assert.Equal(t, domain.VoteSummary{Count: 1, UserVoted: true}, u.For("p1"))
	assert.Equal(t, domain.VoteSummary{}, u.For("p2"), "failed item degrades without failing the batch")
	assert.Equal(t, domain.VoteSummary{Count: 1, UserVoted: true}, u.For("p3"))
}

func TestUpvotesToggle(t *testing.T) {
	stub := newStub(t).
		reply("/api/Upvoting/_getUpvotesByItem", []domain.Vote{{ID: "v1", User: "u2", Item: "p1"}}).
		reply("/api/Upvoting/upvote", map[string]string{}).
		reply("/api/Upvoting/unvote", map[string]string{})
	u := NewUpvotes(stub.gateway(t), logger.Discard().Logger)
	ctx := context.Background()

	require.NoError(t, u.LoadOne(ctx, "p1", "u1"))
	before := u.For("p1")

	got, err := u.Toggle(ctx, "p1", "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.VoteSummary{Count: 2, UserVoted: true}, got)
	assert.Equal(t, 1, stub.calls["/api/Upvoting/upvote"])

	// Toggling back restores the prior summary.
	got, err = u.Toggle(ctx, "p1", "u1")
	require.NoError(t, err)
	assert.Equal(t, before, got)
	assert.Equal(t, 1, stub.calls["/api/Upvoting/unvote"])
}

func TestUpvotesToggleRequiresUser(t *testing.T) {
	stub := newStub(t)
	u := NewUpvotes(stub.gateway(t), logger.Discard().Logger)

	_, err := u.Toggle(context.Background(), "p1", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnauthorized))
	assert.Empty(t, stub.calls)
}

func TestUpvotesToggleFailureKeepsSummary(t *testing.T) {
	stub := newStub(t).
		reply("/api/Upvoting/_getUpvotesByItem", []domain.Vote{{ID: "v1", User: "u1", Item: "p1"}}).
		fail("/api/Upvoting/unvote", http.StatusInternalServerError, "boom")
	u := NewUpvotes(stub.gateway(t), logger.Discard().Logger)
	ctx := context.Background()

	require.NoError(t, u.LoadOne(ctx, "p1", "u1"))
	before := u.For("p1")

	got, err := u.Toggle(ctx, "p1", "u1")
	require.Error(t, err)
	assert.Equal(t, before, got)
	assert.Equal(t, before, u.For("p1"), "no delta before the backend confirms")
}

func TestUpvotesToggleNeverLoadedItem(t *testing.T) {
	stub := newStub(t).reply("/api/Upvoting/upvote", map[string]string{})
	u := NewUpvotes(stub.gateway(t), logger.Discard().Logger)

	got, err := u.Toggle(context.Background(), "p1", "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.VoteSummary{Count: 1, UserVoted: true}, got)
}

func TestUpvotesReset(t *testing.T) {
	stub := newStub(t).reply("/api/Upvoting/_getUpvotesByItem", []domain.Vote{
		{ID: "v1", User: "u1", Item: "p1"},
	})
	u := NewUpvotes(stub.gateway(t), logger.Discard().Logger)
	require.NoError(t, u.LoadOne(context.Background(), "p1", "u1"))

	u.Reset()
	assert.Equal(t, domain.VoteSummary{}, u.For("p1"))
}
