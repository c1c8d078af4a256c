package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authorsite-backend/internal/domains/work"
)

type stubService struct {
	works      []work.Work
	lastFilter work.Filter
	err        error
}

func (s *stubService) Create(ctx context.Context, req *work.CreateWorkRequest) (*work.Work, error) {
	if s.err != nil {
		return nil, s.err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req.ToWork(), nil
}

func (s *stubService) Update(ctx context.Context, id uuid.UUID, req *work.UpdateWorkRequest) (*work.Work, error) {
	return nil, s.err
}

func (s *stubService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func (s *stubService) List(ctx context.Context, filter work.Filter) ([]work.Work, error) {
	s.lastFilter = filter
	return s.works, s.err
}

func (s *stubService) GetBySlug(ctx context.Context, slug string) (*work.Work, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.works[0], nil
}

func (s *stubService) ListFeatured(ctx context.Context, limit int) ([]work.Work, error) {
	return s.works, s.err
}

func (s *stubService) ListSlugs(ctx context.Context) ([]string, error) {
	return []string{"a", "b"}, s.err
}

func newRouter(h *WorkHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/works", h.List)
	r.GET("/api/works/featured", h.ListFeatured)
	r.GET("/api/works/slug/:slug", h.GetBySlug)
	r.POST("/api/works", h.Create)
	r.PUT("/api/works/:id", h.Update)
	r.DELETE("/api/works/:id", h.Delete)
	return r
}

func TestListReturnsEmptyArray(t *testing.T) {
	svc := &stubService{works: []work.Work{}}
	router := newRouter(NewWorkHandler(svc))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/works", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListPassesFilters(t *testing.T) {
	svc := &stubService{works: []work.Work{}}
	router := newRouter(NewWorkHandler(svc))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/works?category=poem&language=hindi&tag=x&search=y&status=all", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, work.Filter{
		Status:   "all",
		Category: "poem",
		Language: "hindi",
		Tag:      "x",
		Search:   "y",
	}, svc.lastFilter)
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := &stubService{err: work.ErrWorkNotFound}
	router := newRouter(NewWorkHandler(svc))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/works/slug/missing", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateValidationFailure(t *testing.T) {
	svc := &stubService{}
	router := newRouter(NewWorkHandler(svc))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/works", strings.NewReader(`{"content":"no title"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSuccess(t *testing.T) {
	svc := &stubService{}
	router := newRouter(NewWorkHandler(svc))

	body := `{"title":"Test Poem","content":"Line one\nLine two"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/works", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Slug    string `json:"slug"`
			Excerpt string `json:"excerpt"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "test-poem", resp.Data.Slug)
	assert.Equal(t, "Line one Line two...", resp.Data.Excerpt)
}

func TestCreateSlugConflict(t *testing.T) {
	svc := &stubService{err: work.ErrSlugAlreadyExists}
	router := newRouter(NewWorkHandler(svc))

	body := `{"title":"Test Poem","content":"c"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/works", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateRejectsBadID(t *testing.T) {
	svc := &stubService{}
	router := newRouter(NewWorkHandler(svc))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/works/not-a-uuid", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteNotFound(t *testing.T) {
	svc := &stubService{err: work.ErrWorkNotFound}
	router := newRouter(NewWorkHandler(svc))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/works/"+uuid.New().String(), nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
