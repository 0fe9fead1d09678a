package profile_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/profile"
	profileerrors "go-hrm/internal/profile/errors"
	"go-hrm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeProfileService struct {
	createFn func(ctx context.Context, req profile.CreateProfileRequest) (profile.ProfileResponse, error)
	getFn    func(ctx context.Context, id string) (profile.ProfileResponse, error)
}

func (f *fakeProfileService) Create(ctx context.Context, req profile.CreateProfileRequest) (profile.ProfileResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeProfileService) Get(ctx context.Context, id string) (profile.ProfileResponse, error) {
	return f.getFn(ctx, id)
}

func newProfileRouter(svc profile.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	profile.RegisterRoutes(r, profile.NewHandler(svc))
	return r
}

func postProfile(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/profile/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProfileHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r := newProfileRouter(&fakeProfileService{
			createFn: func(_ context.Context, req profile.CreateProfileRequest) (profile.ProfileResponse, error) {
				return profile.ProfileResponse{ID: req.ID, FullName: req.FullName}, nil
			},
		})

		w := postProfile(r, `{"id":"EMP001","full_name":"Asha Rao"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp profile.CreateProfileResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Employee created successfully", resp.Message)
		assert.Equal(t, "EMP001", resp.Employee.ID)
	})

	t.Run("missing full name", func(t *testing.T) {
		r := newProfileRouter(&fakeProfileService{})

		w := postProfile(r, `{"id":"EMP001"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Full Name is required")
	})

	t.Run("duplicate", func(t *testing.T) {
		r := newProfileRouter(&fakeProfileService{
			createFn: func(context.Context, profile.CreateProfileRequest) (profile.ProfileResponse, error) {
				return profile.ProfileResponse{}, profileerrors.ErrProfileAlreadyExists
			},
		})

		w := postProfile(r, `{"id":"EMP001","full_name":"Asha Rao"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestProfileHandler_GetByID(t *testing.T) {
	r := newProfileRouter(&fakeProfileService{
		getFn: func(_ context.Context, id string) (profile.ProfileResponse, error) {
			if id == "EMP001" {
				return profile.ProfileResponse{ID: id, FullName: "Asha Rao", Aadhar: "1111"}, nil
			}
			return profile.ProfileResponse{}, profileerrors.ErrProfileNotFound
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/EMP001", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"full_name":"Asha Rao"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/EMP404", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee not found")
}
