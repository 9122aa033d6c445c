package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authRepo "brewhub-backend/internal/auth/repository"
	authUsecase "brewhub-backend/internal/auth/usecase"
	reviewRepo "brewhub-backend/internal/review/repository"
	reviewUsecase "brewhub-backend/internal/review/usecase"
	"brewhub-backend/pkg/config"
	"brewhub-backend/pkg/openbrewery"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	directory := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/42":
			_, _ = w.Write([]byte(`{"id":"42","name":"Mock Brew","city":"denver","street":"1 Main St"}`))
		case r.URL.Query().Get("by_city") != "":
			_, _ = w.Write([]byte(`[{"id":"42","name":"Mock Brew"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Couldn't find Brewery"}`))
		}
	}))
	t.Cleanup(directory.Close)

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  24 * time.Hour,
		BcryptCost: bcrypt.MinCost,
	}

	authUc := authUsecase.NewAuthUsecase(authRepo.NewMemoryUserRepository(), cfg)
	reviewUc := reviewUsecase.NewReviewUsecase(
		reviewRepo.NewMemoryReviewRepository(),
		openbrewery.NewClient(directory.URL, time.Second),
		nil,
	)

	return NewHandler(authUc, reviewUc, cfg).Engine()
}

func request(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestServer(t)
	w := request(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchValidation(t *testing.T) {
	r := newTestServer(t)

	w := request(r, http.MethodGet, "/search?type=by_state&query=denver", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(r, http.MethodGet, "/search?type=by_city", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(r, http.MethodGet, "/search?type=by_city&query=denver", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"42","name":"Mock Brew"}]`, w.Body.String())
}

func TestReviewRouteRequiresToken(t *testing.T) {
	r := newTestServer(t)

	w := request(r, http.MethodPost, "/brewery/42/review", `{"stars":5,"description":"great"}`, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(r, http.MethodPost, "/brewery/42/review", `{"stars":5,"description":"great"}`, "garbage")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestEndToEndScenario(t *testing.T) {
	r := newTestServer(t)

	// Register
	w := request(r, http.MethodPost, "/register",
		`{"username":"alice","email":"a@x.com","mobile":"1234567890","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Login
	w = request(r, http.MethodPost, "/login", `{"username":"alice","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		UserID string `json:"userId"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	// Post a review; a userId smuggled into the body must be ignored in
	// favor of the token subject
	w = request(r, http.MethodPost, "/brewery/42/review",
		`{"stars":5,"description":"great","userId":"someone-else"}`, login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Review added successfully", w.Body.String())

	// Fetch the brewery back with its reviews merged in
	w = request(r, http.MethodGet, "/brewery/42", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var brewery struct {
		Name    string `json:"name"`
		Street  string `json:"street"`
		Reviews []struct {
			UserID      string `json:"userId"`
			Stars       int    `json:"stars"`
			Description string `json:"description"`
		} `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &brewery))
	assert.Equal(t, "Mock Brew", brewery.Name)
	assert.Equal(t, "1 Main St", brewery.Street)
	require.Len(t, brewery.Reviews, 1)
	assert.Equal(t, login.UserID, brewery.Reviews[0].UserID)
	assert.Equal(t, 5, brewery.Reviews[0].Stars)
	assert.Equal(t, "great", brewery.Reviews[0].Description)
}

func TestBreweryDetailFailureIsGeneric500(t *testing.T) {
	r := newTestServer(t)

	w := request(r, http.MethodGet, "/brewery/missing", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to fetch brewery details")
}

func TestInvalidStarsRejected(t *testing.T) {
	r := newTestServer(t)

	w := request(r, http.MethodPost, "/register",
		`{"username":"bob","email":"b@x.com","mobile":"0987654321","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = request(r, http.MethodPost, "/login", `{"username":"bob","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = request(r, http.MethodPost, "/brewery/42/review", `{"stars":6,"description":"too many"}`, login.Token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
