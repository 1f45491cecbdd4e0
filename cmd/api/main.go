package main

import (
	"context"
	"os"
	"reflect"
	"strings"

	"personalhub/cmd/internal/domain/sqlite"
	"personalhub/cmd/internal/domain/sqlite/repository"
	handler2 "personalhub/cmd/internal/http/handler"
	"personalhub/cmd/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/personalhub/prod/"

func main() {
	validate := validator.New()
	registerTagNames(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env when present
		if err := godotenv.Load(); err != nil {
			log.Debugf("no .env file loaded: %v", err)
		}
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	// Init SQLite
	db, err := sqlite.Init(dbPath)
	if err != nil {
		panic(err)
	}

	if os.Getenv("SEED_DB") == "true" {
		if err := sqlite.Seed(db); err != nil {
			panic(err)
		}
	}

	// Getting repos
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewDashboardNoteRepository(db)
	habitRepo := repository.NewHabitRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	toolNoteRepo := repository.NewToolNoteRepository(db)
	toolFileRepo := repository.NewToolFileRepository(db)
	postRepo := repository.NewCommunityPostRepository(db)
	submissionRepo := repository.NewContactSubmissionRepository(db)

	// Getting services
	taskService := service.NewTaskService(taskRepo, validate)
	noteService := service.NewDashboardNoteService(noteRepo, validate)
	habitService := service.NewHabitService(habitRepo, validate)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, validate)
	toolNoteService := service.NewToolNoteService(toolNoteRepo, validate)
	toolFileService := service.NewToolFileService(toolFileRepo, validate)
	postService := service.NewCommunityPostService(postRepo, validate)
	submissionService := service.NewContactSubmissionService(submissionRepo, validate)

	// Getting handlers
	taskRoutes := handler2.NewTaskDefault(taskService)
	noteRoutes := handler2.NewDashboardNoteDefault(noteService)
	habitRoutes := handler2.NewHabitDefault(habitService)
	bookmarkRoutes := handler2.NewBookmarkDefault(bookmarkService)
	toolNoteRoutes := handler2.NewToolNoteDefault(toolNoteService)
	toolFileRoutes := handler2.NewToolFileDefault(toolFileService)
	postRoutes := handler2.NewCommunityPostDefault(postService)
	submissionRoutes := handler2.NewContactSubmissionDefault(submissionService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Tasks
	e.GET("/api/tasks", taskRoutes.GetTasks)
	e.POST("/api/tasks", taskRoutes.CreateTask)
	e.PATCH("/api/tasks", taskRoutes.UpdateTask)
	e.DELETE("/api/tasks", taskRoutes.DeleteTask)

	// Dashboard notes
	e.GET("/api/dashboard-notes", noteRoutes.GetNotes)
	e.POST("/api/dashboard-notes", noteRoutes.CreateNote)
	e.PATCH("/api/dashboard-notes", noteRoutes.UpdateNote)
	e.DELETE("/api/dashboard-notes", noteRoutes.DeleteNote)

	// Habits
	e.GET("/api/habits", habitRoutes.GetHabits)
	e.POST("/api/habits", habitRoutes.CreateHabit)
	e.PATCH("/api/habits", habitRoutes.UpdateHabit)
	e.PATCH("/api/habits/toggle", habitRoutes.ToggleHabit)
	e.DELETE("/api/habits", habitRoutes.DeleteHabit)

	// Bookmarks
	e.GET("/api/bookmarks", bookmarkRoutes.GetBookmarks)
	e.POST("/api/bookmarks", bookmarkRoutes.CreateBookmark)
	e.PATCH("/api/bookmarks", bookmarkRoutes.UpdateBookmark)
	e.DELETE("/api/bookmarks", bookmarkRoutes.DeleteBookmark)

	// Tool notes
	e.GET("/api/tool-notes", toolNoteRoutes.GetNotes)
	e.POST("/api/tool-notes", toolNoteRoutes.CreateNote)
	e.PATCH("/api/tool-notes", toolNoteRoutes.UpdateNote)
	e.DELETE("/api/tool-notes", toolNoteRoutes.DeleteNote)

	// Tool files
	e.GET("/api/tool-files", toolFileRoutes.GetFiles)
	e.POST("/api/tool-files", toolFileRoutes.CreateFile)
	e.PATCH("/api/tool-files", toolFileRoutes.UpdateFile)
	e.DELETE("/api/tool-files", toolFileRoutes.DeleteFile)

	// Community posts
	e.GET("/api/community-posts", postRoutes.GetPosts)
	e.POST("/api/community-posts", postRoutes.CreatePost)

	// Contact submissions
	e.GET("/api/contact-submissions", submissionRoutes.GetSubmissions)
	e.POST("/api/contact-submissions", submissionRoutes.CreateSubmission)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

// registerTagNames makes validation errors report json field names,
// which the fault tables are keyed by.
func registerTagNames(validate *validator.Validate) {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
