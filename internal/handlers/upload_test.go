package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	dir := t.TempDir()
	handler := NewUploadHandler(dir, 16<<20)

	t.Run("stores sanitized file", func(t *testing.T) {
		body, contentType := multipartBody(t, "file", "my logo.png", "fake image data")
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp UploadResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, strings.HasPrefix(resp.URL, "/static/uploads/"))
		assert.True(t, strings.HasSuffix(resp.Filename, "my_logo.png"))

		data, err := os.ReadFile(filepath.Join(dir, resp.Filename))
		require.NoError(t, err)
		assert.Equal(t, "fake image data", string(data))
	})

	t.Run("rejects disallowed extension", func(t *testing.T) {
		body, contentType := multipartBody(t, "file", "payload.exe", "MZ")
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"Invalid file type"}`, rr.Body.String())
	})

	t.Run("missing file field", func(t *testing.T) {
		body, contentType := multipartBody(t, "other", "x.png", "data")
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"No file provided"}`, rr.Body.String())
	})

	t.Run("path components stripped", func(t *testing.T) {
		body, contentType := multipartBody(t, "file", `..\..\evil.png`, "data")
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp UploadResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotContains(t, resp.Filename, "/")
		assert.NotContains(t, resp.Filename, `\`)
		assert.True(t, strings.HasSuffix(resp.Filename, "evil.png"))
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"logo.png", "logo.png"},
		{"my logo.png", "my_logo.png"},
		{"../../../etc/passwd", "passwd"},
		{`..\..\evil.png`, "evil.png"},
		{"...", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), "input %q", tt.in)
	}
}
