package avatar

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fx := setupService(t)
	r := gin.New()
	NewHandler(fx.svc).RegisterRoutes(r.Group("/api/v1"))
	return r, fx
}

func multipartRequest(t *testing.T, target, field, filename, mediaType string, body []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", mediaType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandler_UploadPreviewStream(t *testing.T) {
	r, fx := setupRouter(t)
	id := fx.student(t, "Harry")
	base := fmt.Sprintf("/api/v1/students/%d/avatar", id)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, base, "avatar", "owl.png", "image/png", []byte("hedwig")))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base+"/preview", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "6", w.Header().Get("Content-Length"))
	assert.Equal(t, "hedwig", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "6", w.Header().Get("Content-Length"))
	assert.Equal(t, "hedwig", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/avatars?page=0&size=5", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.NotContains(t, w.Body.String(), "hedwig")
}

func TestHandler_UploadErrors(t *testing.T) {
	r, fx := setupRouter(t)
	id := fx.student(t, "Ron")
	target := fmt.Sprintf("/api/v1/students/%d/avatar", id)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, target, "avatar", "big.png", "image/png", make([]byte, MaxSize)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, target, "picture", "x.png", "image/png", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/api/v1/students/9999/avatar", "avatar", "x.png", "image/png", []byte("x")))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target+"/preview", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/avatars?size=500", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
