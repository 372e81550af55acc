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
	courseRoutes "talenta/routers/courseRoutes"
	newsletterRoutes "talenta/routers/newsletterRoutes"
	reviewRoutes "talenta/routers/reviewRoutes"
	universityRoutes "talenta/routers/universityRoutes"
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

func newCatalogApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:        "test-secret",
		EmailSender:   "noreply@example.com",
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
	courseRoutes.SetupCourseRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	universityRoutes.SetupUniversityRoutes(app)
	newsletterRoutes.SetupNewsletterRoutes(app)
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

	token, err := middleware.GenerateJWT(sub, sub+"@example.com", "Sara", "Tesfaye")
	require.NoError(t, err)

	code, _ := request(t, app, http.MethodGet, "/api/auth/user", token, nil)
	require.Equal(t, http.StatusOK, code)
	return token
}

func postCourse(t *testing.T, app *fiber.App, token string, body fiber.Map) models.Course {
	t.Helper()

	code, env := request(t, app, http.MethodPost, "/api/courses", token, body)
	require.Equal(t, http.StatusCreated, code)

	var course models.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))
	return course
}

func courseBody(title, category string, featured bool) fiber.Map {
	return fiber.Map{
		"title":       title,
		"description": "A long description of the course.",
		"brief":       "Short brief.",
		"category":    category,
		"duration":    "6 weeks",
		"price":       "10.00",
		"priceEtb":    "550.00",
		"isFeatured":  featured,
	}
}

func TestCatalogFilters(t *testing.T) {
	app := newCatalogApp(t)
	token := signIn(t, app, "creator")

	design := postCourse(t, app, token, courseBody("Web Design Basics", "design", true))
	postCourse(t, app, token, courseBody("Data Engineering", "engineering", false))
	postCourse(t, app, token, courseBody("Design Systems", "design", false))

	// No filters: full catalog
	code, env := request(t, app, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, code)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 3)

	// Filters combine with AND
	code, env = request(t, app, http.MethodGet, "/api/courses?search=design&category=design&featured=true", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 1)
	require.Equal(t, design.ID, courses[0].ID)
}

func TestCatalogOrderedByEnrollmentCount(t *testing.T) {
	app := newCatalogApp(t)
	token := signIn(t, app, "creator")

	quiet := postCourse(t, app, token, courseBody("Quiet", "design", false))
	busy := postCourse(t, app, token, courseBody("Busy", "design", false))
	require.NoError(t, storage.Store.UpdateCourseStats(busy.ID, 40, 4.2))
	require.NoError(t, storage.Store.UpdateCourseStats(quiet.ID, 2, 4.9))

	code, env := request(t, app, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, code)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Equal(t, busy.ID, courses[0].ID)
	require.Equal(t, quiet.ID, courses[1].ID)
}

func TestGetCourseNotFound(t *testing.T) {
	app := newCatalogApp(t)

	code, _ := request(t, app, http.MethodGet, "/api/courses/9999", "", nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestCreateCourseValidation(t *testing.T) {
	app := newCatalogApp(t)
	token := signIn(t, app, "creator")

	code, _ := request(t, app, http.MethodPost, "/api/courses", token, fiber.Map{
		"title": "X", "description": "d", "brief": "b", "category": "design",
		"duration": "1 week", "price": "ten dollars", "priceEtb": "550.00",
	})
	require.Equal(t, http.StatusUnprocessableEntity, code)

	// Unauthenticated creation is rejected before validation
	code, _ = request(t, app, http.MethodPost, "/api/courses", "", courseBody("T", "design", false))
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestReviewFlow(t *testing.T) {
	app := newCatalogApp(t)
	token := signIn(t, app, "reviewer")
	course := postCourse(t, app, token, courseBody("Reviewed", "design", false))

	code, _ := request(t, app, http.MethodPost, "/api/reviews", token, fiber.Map{
		"courseId": course.ID, "rating": 6, "comment": "too good",
	})
	require.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = request(t, app, http.MethodPost, "/api/reviews", token, fiber.Map{
		"courseId": course.ID, "rating": 5, "comment": "excellent",
	})
	require.Equal(t, http.StatusCreated, code)

	code, env := request(t, app, http.MethodGet, fmt.Sprintf("/api/courses/%d/reviews", course.ID), "", nil)
	require.Equal(t, http.StatusOK, code)

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(env.Data, &reviews))
	require.Len(t, reviews, 1)
	require.Equal(t, "Sara", reviews[0].User.FirstName)
}

func TestNewsletterSubscribeTwiceSucceeds(t *testing.T) {
	app := newCatalogApp(t)

	code, env := request(t, app, http.MethodPost, "/api/newsletter", "", fiber.Map{"email": "a@b.com"})
	require.Equal(t, http.StatusCreated, code)

	var first models.Newsletter
	require.NoError(t, json.Unmarshal(env.Data, &first))

	code, env = request(t, app, http.MethodPost, "/api/newsletter", "", fiber.Map{"email": "a@b.com"})
	require.Equal(t, http.StatusCreated, code)

	var second models.Newsletter
	require.NoError(t, json.Unmarshal(env.Data, &second))
	require.Equal(t, first.ID, second.ID)
}

func TestNewsletterRejectsBadEmail(t *testing.T) {
	app := newCatalogApp(t)

	code, _ := request(t, app, http.MethodPost, "/api/newsletter", "", fiber.Map{"email": "not-an-email"})
	require.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestUniversitiesArePublic(t *testing.T) {
	app := newCatalogApp(t)
	require.NoError(t, database.Database.Db.Create(&models.University{Name: "Bahir Dar University"}).Error)

	code, env := request(t, app, http.MethodGet, "/api/universities", "", nil)
	require.Equal(t, http.StatusOK, code)

	var universities []models.University
	require.NoError(t, json.Unmarshal(env.Data, &universities))
	require.Len(t, universities, 1)
}
