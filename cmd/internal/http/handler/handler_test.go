package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"personalhub/cmd/internal/domain/sqlite"
	"personalhub/cmd/internal/domain/sqlite/repository"
	handler2 "personalhub/cmd/internal/http/handler"
	"personalhub/cmd/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full stack against a fresh in-memory database,
// one per test, so cases never see each other's rows.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	taskRoutes := handler2.NewTaskDefault(
		service.NewTaskService(repository.NewTaskRepository(db), validate))
	noteRoutes := handler2.NewDashboardNoteDefault(
		service.NewDashboardNoteService(repository.NewDashboardNoteRepository(db), validate))
	habitRoutes := handler2.NewHabitDefault(
		service.NewHabitService(repository.NewHabitRepository(db), validate))
	bookmarkRoutes := handler2.NewBookmarkDefault(
		service.NewBookmarkService(repository.NewBookmarkRepository(db), validate))
	toolNoteRoutes := handler2.NewToolNoteDefault(
		service.NewToolNoteService(repository.NewToolNoteRepository(db), validate))
	toolFileRoutes := handler2.NewToolFileDefault(
		service.NewToolFileService(repository.NewToolFileRepository(db), validate))
	postRoutes := handler2.NewCommunityPostDefault(
		service.NewCommunityPostService(repository.NewCommunityPostRepository(db), validate))
	submissionRoutes := handler2.NewContactSubmissionDefault(
		service.NewContactSubmissionService(repository.NewContactSubmissionRepository(db), validate))

	e := echo.New()

	e.GET("/api/tasks", taskRoutes.GetTasks)
	e.POST("/api/tasks", taskRoutes.CreateTask)
	e.PATCH("/api/tasks", taskRoutes.UpdateTask)
	e.DELETE("/api/tasks", taskRoutes.DeleteTask)

	e.GET("/api/dashboard-notes", noteRoutes.GetNotes)
	e.POST("/api/dashboard-notes", noteRoutes.CreateNote)
	e.PATCH("/api/dashboard-notes", noteRoutes.UpdateNote)
	e.DELETE("/api/dashboard-notes", noteRoutes.DeleteNote)

	e.GET("/api/habits", habitRoutes.GetHabits)
	e.POST("/api/habits", habitRoutes.CreateHabit)
	e.PATCH("/api/habits", habitRoutes.UpdateHabit)
	e.PATCH("/api/habits/toggle", habitRoutes.ToggleHabit)
	e.DELETE("/api/habits", habitRoutes.DeleteHabit)

	e.GET("/api/bookmarks", bookmarkRoutes.GetBookmarks)
	e.POST("/api/bookmarks", bookmarkRoutes.CreateBookmark)
	e.PATCH("/api/bookmarks", bookmarkRoutes.UpdateBookmark)
	e.DELETE("/api/bookmarks", bookmarkRoutes.DeleteBookmark)

	e.GET("/api/tool-notes", toolNoteRoutes.GetNotes)
	e.POST("/api/tool-notes", toolNoteRoutes.CreateNote)
	e.PATCH("/api/tool-notes", toolNoteRoutes.UpdateNote)
	e.DELETE("/api/tool-notes", toolNoteRoutes.DeleteNote)

	e.GET("/api/tool-files", toolFileRoutes.GetFiles)
	e.POST("/api/tool-files", toolFileRoutes.CreateFile)
	e.PATCH("/api/tool-files", toolFileRoutes.UpdateFile)
	e.DELETE("/api/tool-files", toolFileRoutes.DeleteFile)

	e.GET("/api/community-posts", postRoutes.GetPosts)
	e.POST("/api/community-posts", postRoutes.CreatePost)

	e.GET("/api/contact-submissions", submissionRoutes.GetSubmissions)
	e.POST("/api/contact-submissions", submissionRoutes.CreateSubmission)

	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
