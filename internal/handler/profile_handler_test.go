package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sharif-Hamza/novanews/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeProfiles struct {
	profile *model.Profile
	err     error
}

func (f *fakeProfiles) GetByUsername(username string) (*model.Profile, error) {
	return f.profile, f.err
}

func newProfileRouter(store ProfileStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProfileHandler(store)
	r.GET("/profiles/:username", h.GetProfile)
	return r
}

func TestGetProfile_Found(t *testing.T) {
	store := &fakeProfiles{profile: &model.Profile{
		ID:          1,
		Username:    "hamza",
		DisplayName: "Hamza",
		CreatedAt:   time.Now(),
	}}

	r := newProfileRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/profiles/hamza", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var res ProfileResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "hamza", res.Username)
	assert.Equal(t, "Hamza", res.DisplayName)
}

func TestGetProfile_NotFound(t *testing.T) {
	r := newProfileRouter(&fakeProfiles{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/profiles/nobody", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProfile_DBError(t *testing.T) {
	r := newProfileRouter(&fakeProfiles{err: errors.New("DB down")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/profiles/hamza", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
