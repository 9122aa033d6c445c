package delivery

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"brewhub-backend/internal/auth/domain"
	"brewhub-backend/internal/auth/repository"
	"brewhub-backend/internal/auth/usecase"
	"brewhub-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// countingRepo records how many times the store is touched, so tests can
// prove validation rejects bad input before any store access.
type countingRepo struct {
	inner repository.UserRepository
	calls int64
}

func (r *countingRepo) Create(user *domain.User) error {
	atomic.AddInt64(&r.calls, 1)
	return r.inner.Create(user)
}

func (r *countingRepo) FindByUsername(username string) (*domain.User, error) {
	atomic.AddInt64(&r.calls, 1)
	return r.inner.FindByUsername(username)
}

func (r *countingRepo) FindByEmailOrMobile(email, mobile string) (*domain.User, error) {
	atomic.AddInt64(&r.calls, 1)
	return r.inner.FindByEmailOrMobile(email, mobile)
}

func newTestRouter(t *testing.T) (*gin.Engine, *countingRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &countingRepo{inner: repository.NewMemoryUserRepository()}
	uc := usecase.NewAuthUsecase(repo, &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	})

	r := gin.New()
	handler := NewAuthHandler(uc)
	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)
	return r, repo
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRejectsShortMobileBeforeStoreAccess(t *testing.T) {
	r, repo := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/register",
		`{"username":"alice","email":"a@x.com","mobile":"123456789","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), atomic.LoadInt64(&repo.calls))
}

func TestRegisterRejectsBadEmailAndShortPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/register",
		`{"username":"alice","email":"not-an-email","mobile":"1234567890","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/register",
		`{"username":"alice","email":"a@x.com","mobile":"1234567890","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterConflictReturns401(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/register",
		`{"username":"alice","email":"a@x.com","mobile":"1234567890","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/register",
		`{"username":"alice","email":"b@x.com","mobile":"0987654321","password":"secret1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "username already exists")
}

func TestLoginBadCredentialsReturns401(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/login", `{"username":"ghost","password":"secret1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username or password")
}
