package api

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mediatrackapp/mediatrack-server/internal/http/response"
	"github.com/mediatrackapp/mediatrack-server/internal/media/covers"
)

// maxUploadSize caps cover uploads at 10MB.
const maxUploadSize = 10 << 20

// UploadResponse is the wire shape of a successful cover upload.
type UploadResponse struct {
	URL string `json:"url"`
}

// handleUploadCover accepts a multipart cover image upload and stores it
// under a random filename. This is a chi handler because Huma doesn't
// easily support multipart forms.
func (s *Server) handleUploadCover(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "missing file field", s.logger)
		return
	}
	defer file.Close()

	if !covers.AllowedExtension(header.Filename) {
		response.BadRequest(w, "unsupported file extension", s.logger)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("Failed to read upload", "error", err, "filename", header.Filename)
		response.BadRequest(w, "failed to read uploaded file", s.logger)
		return
	}

	// The extension check alone would accept a renamed text file.
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		response.BadRequest(w, "file content is not an image", s.logger)
		return
	}

	filename, err := s.covers.Save(header.Filename, data)
	if err != nil {
		s.logger.Error("Failed to store cover", "error", err, "filename", header.Filename)
		response.InternalError(w, s.logger)
		return
	}

	s.logger.Info("Cover uploaded", "filename", filename, "size", len(data))

	response.Success(w, UploadResponse{URL: "/uploads/" + filename}, s.logger)
}

// handleServeUpload streams a stored cover image.
func (s *Server) handleServeUpload(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if filename == "" {
		response.BadRequest(w, "filename is required", s.logger)
		return
	}

	data, err := s.covers.Get(filename)
	if err != nil {
		response.NotFound(w, "file not found", s.logger)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
