package state

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclubapp/bookclub-client/internal/domain"
	"github.com/bookclubapp/bookclub-client/internal/logger"
)

func tagStub(t *testing.T) *rpcStub {
	next := 0
	return newStub(t).
		on("/api/Tagging/addTag", func(w http.ResponseWriter, r *http.Request) {
			next++
			writeJSON(t, w, http.StatusOK, map[string]string{"tag": "tag" + string(rune('0'+next))})
		}).
		reply("/api/Tagging/removeTag", map[string]string{}).
		reply("/api/Tagging/markPrivate", map[string]string{}).
		reply("/api/Tagging/markPublic", map[string]string{})
}

func TestTagsAdd(t *testing.T) {
	tags := NewTags(tagStub(t).gateway(t), logger.Discard().Logger)

	tag, err := tags.Add(context.Background(), "u1", "sci-fi", "b1")
	require.NoError(t, err)
	assert.Equal(t, "tag1", tag.ID)
	assert.False(t, tag.Private, "new tags are public")

	assert.Len(t, tags.ForUser(), 1)
	assert.Len(t, tags.ForBook("b1"), 1)
}

func TestTagsRemoveSweepsBothIndexes(t *testing.T) {
	tags := NewTags(tagStub(t).gateway(t), logger.Discard().Logger)
	ctx := context.Background()

	_, err := tags.Add(ctx, "u1", "sci-fi", "b1")
	require.NoError(t, err)
	_, err = tags.Add(ctx, "u1", "classics", "b1")
	require.NoError(t, err)

	require.NoError(t, tags.Remove(ctx, "tag1"))

	user := tags.ForUser()
	require.Len(t, user, 1)
	assert.Equal(t, "classics", user[0].Label)

	book := tags.ForBook("b1")
	require.Len(t, book, 1)
	assert.Equal(t, "tag2", book[0].ID)
}

func TestTagsRemoveUnknownSucceeds(t *testing.T) {
	tags := NewTags(tagStub(t).gateway(t), logger.Discard().Logger)
	assert.NoError(t, tags.Remove(context.Background(), "tag-stale"))
}

func TestTagsSetPrivacy(t *testing.T) {
	stub := tagStub(t)
	tags := NewTags(stub.gateway(t), logger.Discard().Logger)
	ctx := context.Background()

	_, err := tags.Add(ctx, "u1", "guilty-pleasure", "b1")
	require.NoError(t, err)

	require.NoError(t, tags.SetPrivacy(ctx, "tag1", true))
	assert.Equal(t, 1, stub.calls["/api/Tagging/markPrivate"])
	assert.True(t, tags.ForUser()[0].Private)
	assert.True(t, tags.ForBook("b1")[0].Private, "flag updated in both indexes")

	require.NoError(t, tags.SetPrivacy(ctx, "tag1", false))
	assert.Equal(t, 1, stub.calls["/api/Tagging/markPublic"])
	assert.False(t, tags.ForUser()[0].Private)
}

func TestTagsSetPrivacyFailureKeepsFlag(t *testing.T) {
	stub := tagStub(t).fail("/api/Tagging/markPrivate", http.StatusInternalServerError, "boom")
	tags := NewTags(stub.gateway(t), logger.Discard().Logger)
	ctx := context.Background()

	_, err := tags.Add(ctx, "u1", "sci-fi", "b1")
	require.NoError(t, err)

	require.Error(t, tags.SetPrivacy(ctx, "tag1", true))
	assert.False(t, tags.ForUser()[0].Private)
}

func TestTagsLoadUser(t *testing.T) {
	stub := newStub(t).reply("/api/Tagging/_getTagsByUser", []domain.Tag{
		{ID: "tag1", User: "u1", Book: "b1", Label: "sci-fi"},
		{ID: "tag2", User: "u1", Book: "b2", Label: "sci-fi", Private: true},
	})
	tags := NewTags(stub.gateway(t), logger.Discard().Logger)

	require.NoError(t, tags.LoadUser(context.Background(), "u1"))
	assert.Len(t, tags.ForUser(), 2)
}

func TestTagsLoadBook(t *testing.T) {
	stub := newStub(t).reply("/api/Tagging/_getTagsByBook", []domain.Tag{
		{ID: "tag1", User: "u1", Book: "b1", Label: "sci-fi"},
		{ID: "tag9", User: "u2", Book: "b1", Label: "overrated"},
	})
	tags := NewTags(stub.gateway(t), logger.Discard().Logger)

	got, err := tags.LoadBook(context.Background(), "u1", "b1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, tags.ForBook("b1"), 2)
}

func TestTagsLoadBookFailureEmptiesEntry(t *testing.T) {
	stub := newStub(t).reply("/api/Tagging/_getTagsByBook", []domain.Tag{
		{ID: "tag1", User: "u1", Book: "b1", Label: "sci-fi"},
	})
	tags := NewTags(stub.gateway(t), logger.Discard().Logger)
	_, err := tags.LoadBook(context.Background(), "u1", "b1")
	require.NoError(t, err)

	stub.fail("/api/Tagging/_getTagsByBook", http.StatusInternalServerError, "boom")
	_, err = tags.LoadBook(context.Background(), "u1", "b1")
	require.Error(t, err)
	assert.Empty(t, tags.ForBook("b1"))
}

func TestTagsTaggedBooks(t *testing.T) {
	stub := newStub(t).reply("/api/Tagging/_getTagsByUser", []domain.Tag{
		{ID: "tag1", User: "u1", Book: "b1", Label: "sci-fi"},
		{ID: "tag2", User: "u1", Book: "b2", Label: "classics"},
		{ID: "tag3", User: "u1", Book: "b1", Label: "favorites"},
	})
	tags := NewTags(stub.gateway(t), logger.Discard().Logger)
	require.NoError(t, tags.LoadUser(context.Background(), "u1"))

	grouped := tags.TaggedBooks()
	require.Len(t, grouped, 2)
	assert.Equal(t, "b1", grouped[0].BookID, "books keep first-appearance order")
	assert.Len(t, grouped[0].Tags, 2)
	assert.Equal(t, "b2", grouped[1].BookID)
	assert.Len(t, grouped[1].Tags, 1)
}

func TestTagsLabelsHistogram(t *testing.T) {
	stub := newStub(t).reply("/api/Tagging/_getTagsByUser", []domain.Tag{
		{ID: "tag1", User: "u1", Book: "b1", Label: "sci-fi"},
		{ID: "tag2", User: "u1", Book: "b2", Label: "classics"},
		{ID: "tag3", User: "u1", Book: "b3", Label: "sci-fi"},
		{ID: "tag4", User: "u1", Book: "b4", Label: "favorites"},
	})
	tags := NewTags(stub.gateway(t), logger.Discard().Logger)
	require.NoError(t, tags.LoadUser(context.Background(), "u1"))

	labels := tags.Labels()
	require.Len(t, labels, 3)
	assert.Equal(t, domain.LabelCount{Label: "sci-fi", Count: 2}, labels[0])
	// Ties keep encounter order.
	assert.Equal(t, "classics", labels[1].Label)
	assert.Equal(t, "favorites", labels[2].Label)
}

func TestTagsBooksByLabelRequiresLabels(t *testing.T) {
	tags := NewTags(newStub(t).gateway(t), logger.Discard().Logger)
	_, err := tags.BooksByLabel(context.Background(), "u1", nil, "any")
	assert.Error(t, err)
}
