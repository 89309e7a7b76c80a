package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kdduha/vision-relay/internal/models"
)

const audioContentType = "audio/mpeg"

type speechService interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type SpeechHandler struct {
	service speechService
}

func NewSpeechHandler(service speechService) *SpeechHandler {
	return &SpeechHandler{
		service: service,
	}
}

// Speech godoc
// @Summary Synthesize speech
// @Description Relay text to the speech provider and return the audio bytes.
// @Tags speech
// @Accept json
// @Produce audio/mpeg
// @Param request body models.SpeechRequest true "Speech request"
// @Success 200 {file} binary
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /speech [post]
func (h *SpeechHandler) Speech(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[models.SpeechRequest](r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgNoJSONBody)
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, msgMissingText)
		return
	}

	audio, err := h.service.Synthesize(r.Context(), req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", audioContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}
