package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"personalhub/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolNoteSearchTitleOrContent(t *testing.T) {
	e := newTestServer(t)

	bodies := []string{
		`{"title": "meeting notes", "content": "discuss roadmap"}`,
		`{"title": "ideas", "content": "meeting room booking app"}`,
		`{"title": "groceries", "content": "eggs"}`,
	}
	for _, b := range bodies {
		rec := doRequest(e, http.MethodPost, "/api/tool-notes", b)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	var notes []entity.ToolNote
	rec := doRequest(e, http.MethodGet, "/api/tool-notes?search=meeting", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &notes)
	assert.Len(t, notes, 2)
}

func TestToolNoteNotFoundUsesGenericCode(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/tool-notes?id=5", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var apierr struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	decodeInto(t, rec, &apierr)
	assert.Equal(t, "NOT_FOUND", apierr.Code)
	assert.Equal(t, "Note not found", apierr.Error)
}

// Like dashboard notes, an empty PATCH body on tool notes is a no-op.
func TestUpdateToolNoteEmptyBodyIsNoop(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/tool-notes",
		`{"title": "keep", "content": "unchanged"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created entity.ToolNote
	decodeInto(t, rec, &created)

	rec = doRequest(e, http.MethodPatch,
		fmt.Sprintf("/api/tool-notes?id=%d", created.ID), `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got entity.ToolNote
	decodeInto(t, rec, &got)
	assert.Equal(t, "unchanged", got.Content)
}

func TestToolFileLifecycle(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/tool-files",
		`{"name": "report.pdf", "category": "docs", "size": "2.4 MB"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.ToolFile
	decodeInto(t, rec, &created)
	assert.Equal(t, "report.pdf", created.Name)
	assert.NotEmpty(t, created.Timestamp)

	rec = doRequest(e, http.MethodPatch,
		fmt.Sprintf("/api/tool-files?id=%d", created.ID), `{"name": "report-v2.pdf"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated entity.ToolFile
	decodeInto(t, rec, &updated)
	assert.Equal(t, "report-v2.pdf", updated.Name)
	assert.Equal(t, "2.4 MB", updated.Size)

	rec = doRequest(e, http.MethodDelete,
		fmt.Sprintf("/api/tool-files?id=%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Message string          `json:"message"`
		File    entity.ToolFile `json:"file"`
	}
	decodeInto(t, rec, &envelope)
	assert.Equal(t, "File deleted successfully", envelope.Message)
	assert.Equal(t, created.ID, envelope.File.ID)

	rec = doRequest(e, http.MethodGet,
		fmt.Sprintf("/api/tool-files?id=%d", created.ID), "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var apierr struct {
		Code string `json:"code"`
	}
	decodeInto(t, rec, &apierr)
	assert.Equal(t, "FILE_NOT_FOUND", apierr.Code)
}

func TestCreateToolFileValidation(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"missing name", `{"category": "docs", "size": "1 KB"}`, "MISSING_NAME"},
		{"missing category", `{"name": "a.txt", "size": "1 KB"}`, "MISSING_CATEGORY"},
		{"missing size", `{"name": "a.txt", "category": "docs"}`, "MISSING_SIZE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/tool-files", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var apierr struct {
				Code string `json:"code"`
			}
			decodeInto(t, rec, &apierr)
			assert.Equal(t, tc.wantCode, apierr.Code)
		})
	}
}

func TestUpdateToolFileNoFields(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/tool-files",
		`{"name": "x.txt", "category": "docs", "size": "1 KB"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created entity.ToolFile
	decodeInto(t, rec, &created)

	rec = doRequest(e, http.MethodPatch,
		fmt.Sprintf("/api/tool-files?id=%d", created.ID), `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apierr struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	decodeInto(t, rec, &apierr)
	assert.Equal(t, "NO_UPDATE_FIELDS", apierr.Code)
	assert.Equal(t, "No valid fields to update", apierr.Error)
}
