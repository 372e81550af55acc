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
	paymentRoutes "talenta/routers/paymentRoutes"
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

func newPaymentApp(t *testing.T, gatewayURL string) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:           "test-secret",
		PaymentApiURL:    gatewayURL,
		PaymentSecretKey: "sk_test_123",
		StatsCronSpec:    "@every 15m",
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
	paymentRoutes.SetupPaymentRoutes(app)
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

	token, err := middleware.GenerateJWT(sub, sub+"@example.com", "Abel", "Girma")
	require.NoError(t, err)

	code, _ := request(t, app, http.MethodGet, "/api/auth/user", token, nil)
	require.Equal(t, http.StatusOK, code)
	return token
}

func seedCourse(t *testing.T) models.Course {
	t.Helper()

	course := models.Course{
		Title: "Paid Course", Description: "d", Brief: "b",
		Category: "design", Duration: "4 weeks",
		Price: "25.00", PriceEtb: "1400.00",
	}
	require.NoError(t, storage.Store.CreateCourse(&course))
	return course
}

func TestCreatePaymentIntentRelaysClientSecret(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "2550", r.FormValue("amount"))
		require.Equal(t, "usd", r.FormValue("currency"))
		fmt.Fprint(w, `{"client_secret":"pi_secret_abc"}`)
	}))
	defer gateway.Close()

	app := newPaymentApp(t, gateway.URL+"/")

	code, env := request(t, app, http.MethodPost, "/api/create-payment-intent", "", fiber.Map{
		"amount": 25.50,
	})
	require.Equal(t, http.StatusOK, code)

	var data struct {
		ClientSecret string `json:"clientSecret"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, "pi_secret_abc", data.ClientSecret)
}

func TestCreatePaymentIntentProcessorFailure(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":{"message":"Your card was declined."}}`)
	}))
	defer gateway.Close()

	app := newPaymentApp(t, gateway.URL+"/")

	code, env := request(t, app, http.MethodPost, "/api/create-payment-intent", "", fiber.Map{
		"amount": 10.0,
	})
	require.Equal(t, http.StatusBadGateway, code)
	// Processor error text must not leak to the client
	require.NotContains(t, env.Message, "declined")
}

func TestCreatePaymentIntentValidation(t *testing.T) {
	app := newPaymentApp(t, "http://127.0.0.1:1/")

	code, _ := request(t, app, http.MethodPost, "/api/create-payment-intent", "", fiber.Map{
		"amount": -5.0,
	})
	require.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestCreatePaymentRecord(t *testing.T) {
	app := newPaymentApp(t, "http://127.0.0.1:1/")
	token := signIn(t, app, "payer")
	course := seedCourse(t)

	code, env := request(t, app, http.MethodPost, "/api/payments", token, fiber.Map{
		"courseId": course.ID, "amount": "25.00", "currency": "usd",
		"method": "card", "gatewayPaymentId": "pi_123",
	})
	require.Equal(t, http.StatusCreated, code)

	var payment models.Payment
	require.NoError(t, json.Unmarshal(env.Data, &payment))
	require.Equal(t, "pending", payment.Status)
	require.Equal(t, "pi_123", payment.GatewayPaymentId)
	require.Equal(t, "payer", payment.UserID)
}

func TestCreatePaymentUnknownCourse(t *testing.T) {
	app := newPaymentApp(t, "http://127.0.0.1:1/")
	token := signIn(t, app, "payer")

	code, _ := request(t, app, http.MethodPost, "/api/payments", token, fiber.Map{
		"courseId": 9999, "amount": "25.00", "currency": "usd", "method": "card",
	})
	require.Equal(t, http.StatusNotFound, code)
}

func TestCreatePaymentRequiresAuth(t *testing.T) {
	app := newPaymentApp(t, "http://127.0.0.1:1/")

	code, _ := request(t, app, http.MethodPost, "/api/payments", "", fiber.Map{
		"courseId": 1, "amount": "25.00", "currency": "usd", "method": "card",
	})
	require.Equal(t, http.StatusUnauthorized, code)
}
