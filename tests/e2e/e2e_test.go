package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school/internal/config"
	"school/internal/database"
	"school/internal/domain"
	"school/internal/repository"
	"school/internal/server"
)

type E2ETestSuite struct {
	router *gin.Engine
}

type TestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", t.Name()), database.Options{Silent: true})
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{}
	cfg.Server.Port = "8080"
	cfg.Avatars.Dir = filepath.Join(t.TempDir(), "avatars")

	return &E2ETestSuite{router: server.NewRouter(db, cfg)}
}

func (s *E2ETestSuite) makeRequest(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestE2E_GryffindorScenario(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.makeRequest(t, http.MethodPost, "/api/v1/faculties", map[string]string{"name": "Gryffindor", "colour": "Red"})
	require.Equal(t, http.StatusCreated, w.Code)
	gryffindor := decode[domain.Faculty](t, resp.Data)
	assert.Equal(t, int64(1), gryffindor.ID)

	w, resp = s.makeRequest(t, http.MethodPost, "/api/v1/students", map[string]any{
		"name": "Harry", "surname": "Potter", "age": 11, "faculty_id": gryffindor.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	harry := decode[domain.Student](t, resp.Data)
	assert.Equal(t, int64(1), harry.ID)

	_, resp = s.makeRequest(t, http.MethodGet, "/api/v1/students/filter-by-age?min=10&max=12", nil)
	assert.Equal(t, []domain.Student{harry}, decode[[]domain.Student](t, resp.Data))

	_, resp = s.makeRequest(t, http.MethodGet, "/api/v1/faculties/1/students", nil)
	assert.Equal(t, []domain.Student{harry}, decode[[]domain.Student](t, resp.Data))

	w, _ = s.makeRequest(t, http.MethodDelete, "/api/v1/faculties/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = s.makeRequest(t, http.MethodGet, "/api/v1/students/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	still := decode[domain.Student](t, resp.Data)
	require.NotNil(t, still.FacultyID)
	assert.Equal(t, gryffindor.ID, *still.FacultyID)

	w, _ = s.makeRequest(t, http.MethodGet, "/api/v1/students/1/faculty", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestE2E_AvatarRoundTrip(t *testing.T) {
	s := setupTestSuite(t)

	_, resp := s.makeRequest(t, http.MethodPost, "/api/v1/students", map[string]any{"name": "Hermione", "age": 12})
	hermione := decode[domain.Student](t, resp.Data)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", "cat.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("crookshanks"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	target := fmt.Sprintf("/api/v1/students/%d/avatar", hermione.ID)
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "crookshanks", w.Body.String())
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
}

func TestE2E_Statistics(t *testing.T) {
	s := setupTestSuite(t)

	for _, st := range []map[string]any{
		{"name": "Albus", "age": 115},
		{"name": "Aberforth", "age": 111},
		{"name": "Minerva", "age": 70},
	} {
		w, _ := s.makeRequest(t, http.MethodPost, "/api/v1/students", st)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	_, resp := s.makeRequest(t, http.MethodGet, "/api/v1/stats/students/count", nil)
	assert.JSONEq(t, `{"count":3}`, string(resp.Data))

	_, resp = s.makeRequest(t, http.MethodGet, "/api/v1/stats/students/names-starting-with-a", nil)
	assert.Equal(t, []string{"ABERFORTH", "ALBUS"}, decode[[]string](t, resp.Data))

	_, resp = s.makeRequest(t, http.MethodGet, "/api/v1/stats/students/latest?n=1", nil)
	latest := decode[[]domain.Student](t, resp.Data)
	require.Len(t, latest, 1)
	assert.Equal(t, "Minerva", latest[0].Name)

	w, resp := s.makeRequest(t, http.MethodGet, "/api/v1/students/filter-by-age?max=10", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}
