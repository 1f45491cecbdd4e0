package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"personalhub/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkLifecycle(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/bookmarks",
		`{"title": "Go blog", "url": "https://go.dev/blog", "category": "dev"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Bookmark
	decodeInto(t, rec, &created)
	assert.Equal(t, "Go blog", created.Title)

	rec = doRequest(e, http.MethodPatch,
		fmt.Sprintf("/api/bookmarks?id=%d", created.ID), `{"category": "reading"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated entity.Bookmark
	decodeInto(t, rec, &updated)
	assert.Equal(t, "reading", updated.Category)
	assert.Equal(t, created.URL, updated.URL)

	rec = doRequest(e, http.MethodDelete,
		fmt.Sprintf("/api/bookmarks?id=%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Message  string          `json:"message"`
		Bookmark entity.Bookmark `json:"bookmark"`
	}
	decodeInto(t, rec, &envelope)
	assert.Equal(t, "Bookmark deleted successfully", envelope.Message)
	assert.Equal(t, created.ID, envelope.Bookmark.ID)
}

func TestBookmarkNotFoundCode(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/bookmarks?id=3", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var apierr struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	decodeInto(t, rec, &apierr)
	assert.Equal(t, "NOT_FOUND", apierr.Code)
	assert.Equal(t, "Bookmark not found", apierr.Error)
}

func TestUpdateBookmarkNoFields(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/bookmarks",
		`{"title": "t", "url": "u", "category": "c"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created entity.Bookmark
	decodeInto(t, rec, &created)

	rec = doRequest(e, http.MethodPatch,
		fmt.Sprintf("/api/bookmarks?id=%d", created.ID), `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apierr struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	decodeInto(t, rec, &apierr)
	assert.Equal(t, "NO_UPDATES", apierr.Code)
	assert.Equal(t, "No valid fields to update", apierr.Error)
}

func TestListBookmarksCategoryFilter(t *testing.T) {
	e := newTestServer(t)

	bodies := []string{
		`{"title": "Go blog", "url": "https://go.dev/blog", "category": "dev"}`,
		`{"title": "HN", "url": "https://news.ycombinator.com", "category": "news"}`,
	}
	for _, b := range bodies {
		rec := doRequest(e, http.MethodPost, "/api/bookmarks", b)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	var bookmarks []entity.Bookmark
	rec := doRequest(e, http.MethodGet, "/api/bookmarks?category=dev", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &bookmarks)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "Go blog", bookmarks[0].Title)
}
