package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nawi-studio/nawi-backend/internal/logger"
)

// Image extensions accepted by the upload endpoint.
var allowedUploadExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// UploadResponse reports where an uploaded file was stored
// swagger:model UploadResponse
type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// NewUploadHandler returns an admin handler storing image uploads
// under uploadDir. Filenames are sanitized and prefixed with a
// timestamp so repeated uploads never collide.
// @Summary Upload an image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} handlers.UploadResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing file or disallowed type"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Router /api/upload [post]
// @Security BearerAuth
func NewUploadHandler(uploadDir string, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file provided")
			return
		}
		defer file.Close()

		name := sanitizeFilename(header.Filename)
		if name == "" {
			writeError(w, http.StatusBadRequest, "No file selected")
			return
		}

		if !allowedUploadExts[strings.ToLower(filepath.Ext(name))] {
			writeError(w, http.StatusBadRequest, "Invalid file type")
			return
		}

		filename := time.Now().Format("20060102_150405") + "_" + name

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			logger.Log.Errorw("upload dir creation failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		dst, err := os.Create(filepath.Join(uploadDir, filename))
		if err != nil {
			logger.Log.Errorw("upload file creation failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}
		defer dst.Close()

		if _, err := io.Copy(dst, file); err != nil {
			logger.Log.Errorw("upload write failed", "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		writeJSON(w, http.StatusOK, UploadResponse{
			Message:  "File uploaded successfully",
			Filename: filename,
			URL:      "/static/uploads/" + filename,
		})
	}
}

// sanitizeFilename strips any path components and keeps a conservative
// character set.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), "._")
	if out == "" || out == "." {
		return ""
	}
	return out
}
