package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/kdduha/vision-relay/internal/models"
)

const maxAudioUpload = 25 << 20

type transcribeService interface {
	Transcribe(ctx context.Context, audio io.Reader, filename, contentType string) (string, error)
}

type TranscribeHandler struct {
	service transcribeService
}

func NewTranscribeHandler(service transcribeService) *TranscribeHandler {
	return &TranscribeHandler{
		service: service,
	}
}

// Transcribe godoc
// @Summary Transcribe audio
// @Description Relay a recorded audio file to the speech-to-text model.
// @Tags speech
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Success 200 {object} models.TranscribeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transcribe [post]
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAudioUpload)

	file, hdr, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, msgMissingFile)
		return
	}
	defer file.Close()

	contentType := hdr.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	text, err := h.service.Transcribe(r.Context(), file, hdr.Filename, contentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.TranscribeResponse{Text: text})
}
