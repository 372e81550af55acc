package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"talenta/config"
	"talenta/database"
	"talenta/middleware"
	"talenta/models"
	authRoutes "talenta/routers/authRoutes"
	financialAidRoutes "talenta/routers/financialAidRoutes"
	"talenta/storage"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newAidApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:        "test-secret",
		StatsCronSpec: "@every 15m",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	storage.Store = storage.New(db)

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	financialAidRoutes.SetupFinancialAidRoutes(app)
	return app
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func signIn(t *testing.T, app *fiber.App, sub string) string {
	t.Helper()

	token, err := middleware.GenerateJWT(sub, sub+"@example.com", "Hana", "Bekele")
	require.NoError(t, err)

	code, _ := request(t, app, http.MethodGet, "/api/auth/user", token, nil)
	require.Equal(t, http.StatusOK, code)
	return token
}

func TestApplyForAid(t *testing.T) {
	app := newAidApp(t)
	token := signIn(t, app, "student")

	course := models.Course{
		Title: "Aided", Description: "d", Brief: "b",
		Category: "design", Duration: "4 weeks",
		Price: "25.00", PriceEtb: "1400.00",
	}
	require.NoError(t, storage.Store.CreateCourse(&course))

	code, env := request(t, app, http.MethodPost, "/api/financial-aid", token, fiber.Map{
		"courseId": course.ID,
		"reason":   "I am a student without a steady income and cannot afford the fee.",
		"income":   "under-1000",
	})
	require.Equal(t, http.StatusCreated, code)

	var aid models.FinancialAid
	require.NoError(t, json.Unmarshal(env.Data, &aid))
	require.Equal(t, "pending", aid.Status)
	require.Nil(t, aid.ReviewedAt)

	code, env = request(t, app, http.MethodGet, "/api/financial-aid", token, nil)
	require.Equal(t, http.StatusOK, code)

	var applications []models.FinancialAid
	require.NoError(t, json.Unmarshal(env.Data, &applications))
	require.Len(t, applications, 1)
	require.Equal(t, aid.ID, applications[0].ID)
}

func TestApplyForAidShortReason(t *testing.T) {
	app := newAidApp(t)
	token := signIn(t, app, "student")

	code, _ := request(t, app, http.MethodPost, "/api/financial-aid", token, fiber.Map{
		"courseId": 1,
		"reason":   "too short",
	})
	require.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestAidApplicationsAreScopedToUser(t *testing.T) {
	app := newAidApp(t)
	alice := signIn(t, app, "alice")
	bob := signIn(t, app, "bob")

	course := models.Course{
		Title: "Aided", Description: "d", Brief: "b",
		Category: "design", Duration: "4 weeks",
		Price: "25.00", PriceEtb: "1400.00",
	}
	require.NoError(t, storage.Store.CreateCourse(&course))

	code, _ := request(t, app, http.MethodPost, "/api/financial-aid", alice, fiber.Map{
		"courseId": course.ID,
		"reason":   "I am a student without a steady income and cannot afford the fee.",
	})
	require.Equal(t, http.StatusCreated, code)

	code, env := request(t, app, http.MethodGet, "/api/financial-aid", bob, nil)
	require.Equal(t, http.StatusOK, code)

	var applications []models.FinancialAid
	require.NoError(t, json.Unmarshal(env.Data, &applications))
	require.Empty(t, applications)
}
