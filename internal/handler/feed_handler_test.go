package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/daily-feed-api/internal/config"
	"github.com/noah-isme/daily-feed-api/internal/dto"
	"github.com/noah-isme/daily-feed-api/internal/handler"
	"github.com/noah-isme/daily-feed-api/internal/middleware"
	"github.com/noah-isme/daily-feed-api/internal/models"
	"github.com/noah-isme/daily-feed-api/internal/repository"
	"github.com/noah-isme/daily-feed-api/internal/roster"
	"github.com/noah-isme/daily-feed-api/internal/router"
	"github.com/noah-isme/daily-feed-api/internal/service"
)

func setupFeedApp(t *testing.T) *fiber.App {
	return buildFeedApp(t, false)
}

func buildFeedApp(t *testing.T, withPipeline bool) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.FeedEntry{}))

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)
	students := roster.Default()

	entryRepo := repository.NewFeedEntryRepository(db)
	feedService := service.NewFeedService(entryRepo, students, validate, logger)

	cfg := config.Config{
		AppName:      "special-ed-platform-backend",
		TeacherToken: "teacher-token-123",
		ParentToken:  "parent-token-123",
		AdminToken:   "admin-token-123",
	}

	app := fiber.New()
	if withPipeline {
		middleware.Register(app, middleware.Config{Logger: &logger})
	}
	router.Register(app, cfg, router.Dependencies{
		StudentHandler: handler.NewStudentHandler(students),
		FeedHandler:    handler.NewFeedHandler(feedService, logger),
	})

	return app
}

func createFeedRequest(studentID, token, note string) *http.Request {
	body, _ := json.Marshal(map[string]string{"note": note})
	req := httptest.NewRequest("POST", "/students/"+studentID+"/daily-feed", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeResponse(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	require.NoError(t, resp.Body.Close())
}

func TestCreateThenListFeedEntry(t *testing.T) {
	app := setupFeedApp(t)

	resp, err := app.Test(createFeedRequest("1", "teacher-token-123", "Did puzzle"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created dto.FeedEntryCreatedResponse
	decodeResponse(t, resp, &created)
	require.True(t, created.OK)
	require.NotZero(t, created.Entry.ID)
	require.Equal(t, uint(1), created.Entry.StudentID)
	require.Equal(t, "note", created.Entry.Type)
	require.Equal(t, "Did puzzle", created.Entry.Note)
	require.NotEmpty(t, created.Entry.CreatedAtUTC)
	require.Equal(t, "teacher", created.Entry.CreatedByRole)

	listReq := httptest.NewRequest("GET", "/students/1/daily-feed", nil)
	listReq.Header.Set("Authorization", "Bearer parent-token-123")
	listResp, err := app.Test(listReq)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)

	var feed dto.FeedListResponse
	decodeResponse(t, listResp, &feed)
	require.True(t, feed.OK)
	require.Equal(t, uint(1), feed.StudentID)
	require.Equal(t, "parent", feed.ViewerRole)
	require.Len(t, feed.Entries, 1)
	require.Equal(t, created.Entry.ID, feed.Entries[0].ID)
	require.Equal(t, created.Entry.Note, feed.Entries[0].Note)
	require.Equal(t, created.Entry.CreatedAtUTC, feed.Entries[0].CreatedAtUTC)
	require.Empty(t, feed.Entries[0].CreatedByRole)
}

func TestCreateReturnsEntriesNewestFirstOnList(t *testing.T) {
	app := setupFeedApp(t)

	var lastID uint
	for _, note := range []string{"breakfast", "did puzzle", "nap"} {
		resp, err := app.Test(createFeedRequest("1", "teacher-token-123", note))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var created dto.FeedEntryCreatedResponse
		decodeResponse(t, resp, &created)
		require.Greater(t, created.Entry.ID, lastID)
		lastID = created.Entry.ID
	}

	listReq := httptest.NewRequest("GET", "/students/1/daily-feed", nil)
	listReq.Header.Set("Authorization", "Bearer admin-token-123")
	listResp, err := app.Test(listReq)
	require.NoError(t, err)

	var feed dto.FeedListResponse
	decodeResponse(t, listResp, &feed)
	require.Equal(t, "admin", feed.ViewerRole)
	require.Len(t, feed.Entries, 3)
	require.Equal(t, "nap", feed.Entries[0].Note)
	require.Equal(t, "breakfast", feed.Entries[2].Note)
}

func TestCreateUnknownStudentIs404(t *testing.T) {
	app := setupFeedApp(t)

	resp, err := app.Test(createFeedRequest("999", "teacher-token-123", "hello"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateBlankNoteIs400(t *testing.T) {
	app := setupFeedApp(t)

	resp, err := app.Test(createFeedRequest("1", "teacher-token-123", "   "))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateRequiresTeacherRole(t *testing.T) {
	app := setupFeedApp(t)

	for _, token := range []string{"parent-token-123", "admin-token-123"} {
		resp, err := app.Test(createFeedRequest("1", token, "hello"))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode, "token %q must not create entries", token)
	}
}

func TestCreateWithoutCredentialIs401(t *testing.T) {
	app := setupFeedApp(t)

	resp, err := app.Test(createFeedRequest("1", "", "hello"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreateWithUnknownTokenIs401(t *testing.T) {
	app := setupFeedApp(t)

	resp, err := app.Test(createFeedRequest("1", "made-up-token", "hello"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreateNonIntegerStudentIDIs400(t *testing.T) {
	app := setupFeedApp(t)

	resp, err := app.Test(createFeedRequest("abc", "teacher-token-123", "hello"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListUnknownStudentIs404(t *testing.T) {
	app := setupFeedApp(t)

	req := httptest.NewRequest("GET", "/students/999/daily-feed", nil)
	req.Header.Set("Authorization", "Bearer parent-token-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListWithoutCredentialIs401(t *testing.T) {
	app := setupFeedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/students/1/daily-feed", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewarePipelinePreservesResponses(t *testing.T) {
	app := buildFeedApp(t, true)

	resp, err := app.Test(createFeedRequest("1", "teacher-token-123", "Did puzzle"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Correlation-ID"))

	var created dto.FeedEntryCreatedResponse
	decodeResponse(t, resp, &created)
	require.True(t, created.OK)
	require.Equal(t, uint(1), created.Entry.StudentID)
	require.Equal(t, "note", created.Entry.Type)
	require.Equal(t, "Did puzzle", created.Entry.Note)
	require.Equal(t, "teacher", created.Entry.CreatedByRole)

	listReq := httptest.NewRequest("GET", "/students/1/daily-feed", nil)
	listReq.Header.Set("Authorization", "Bearer parent-token-123")
	listResp, err := app.Test(listReq)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)

	var feed dto.FeedListResponse
	decodeResponse(t, listResp, &feed)
	require.True(t, feed.OK)
	require.Equal(t, "parent", feed.ViewerRole)
	require.Len(t, feed.Entries, 1)
	require.Equal(t, created.Entry.ID, feed.Entries[0].ID)

	metricsResp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, metricsResp.StatusCode)

	scrape, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	require.NoError(t, metricsResp.Body.Close())
	require.Contains(t, string(scrape), "feed_requests_total")
}

func TestListEmptyFeedIsOK(t *testing.T) {
	app := setupFeedApp(t)

	req := httptest.NewRequest("GET", "/students/2/daily-feed", nil)
	req.Header.Set("Authorization", "Bearer teacher-token-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var feed dto.FeedListResponse
	decodeResponse(t, resp, &feed)
	require.True(t, feed.OK)
	require.NotNil(t, feed.Entries)
	require.Empty(t, feed.Entries)
}
