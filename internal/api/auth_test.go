package api

import (
	"context"
	"net/http"
	"testing"

	"library_system/internal/domain"
	"library_system/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIdentityService implements IdentityService with canned users.
type fakeIdentityService struct {
	users  map[string]string // email -> password
	nextID uint
}

func newFakeIdentityService() *fakeIdentityService {
	return &fakeIdentityService{users: map[string]string{}}
}

func (f *fakeIdentityService) Register(_ context.Context, email, password string) (*domain.User, error) {
	if _, ok := f.users[email]; ok {
		return nil, service.ErrEmailTaken
	}
	f.users[email] = password
	f.nextID++
	return &domain.User{ID: f.nextID, Email: email}, nil
}

func (f *fakeIdentityService) Authenticate(_ context.Context, email, password string) (*domain.User, error) {
	stored, ok := f.users[email]
	if !ok || stored != password {
		return nil, service.ErrInvalidCredentials
	}
	return &domain.User{ID: 1, Email: email}, nil
}

func (f *fakeIdentityService) List(context.Context, int, int) ([]domain.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeIdentityService) Delete(context.Context, uint) error { return nil }

func newAuthRouter(svc IdentityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/user", RegisterHandler(svc, testRedis()))
	r.POST("/user/login", LoginHandler(svc, "test-secret"))
	return r
}

func TestRegisterEndpoint(t *testing.T) {
	r := newAuthRouter(newFakeIdentityService())

	w := doRequest(r, http.MethodPost, "/user", `{"email":"reader@example.com","password":"correct-horse"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same email again conflicts
	w = doRequest(r, http.MethodPost, "/user", `{"email":"reader@example.com","password":"correct-horse"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	svc := newFakeIdentityService()
	r := newAuthRouter(svc)

	w := doRequest(r, http.MethodPost, "/user", `{"email":"reader@example.com","password":"correct-horse"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodPost, "/user/login", `{"email":"reader@example.com","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")

	// Wrong password and unknown email come back identical
	wrong := doRequest(r, http.MethodPost, "/user/login", `{"email":"reader@example.com","password":"nope"}`)
	unknown := doRequest(r, http.MethodPost, "/user/login", `{"email":"ghost@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestLoginMalformedBody(t *testing.T) {
	r := newAuthRouter(newFakeIdentityService())

	w := doRequest(r, http.MethodPost, "/user/login", `{"email":"reader@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
