package handler

import (
	"context"
	"net/http"

	"github.com/kdduha/vision-relay/internal/models"
)

type visionService interface {
	Analyze(ctx context.Context, image, text string) (string, error)
}

type AnalyzeHandler struct {
	service visionService
}

func NewAnalyzeHandler(service visionService) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
	}
}

// Analyze godoc
// @Summary Describe an image
// @Description Relay a base64 JPEG and an optional question to the vision model. Image is sent as base64 string in JSON.
// @Tags vision
// @Accept json
// @Produce json
// @Param request body models.AnalyzeRequest true "Analyze request"
// @Success 200 {object} models.AnalyzeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[models.AnalyzeRequest](r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgNoJSONBody)
		return
	}

	if req.Image == "" {
		writeError(w, http.StatusBadRequest, msgMissingImage)
		return
	}

	answer, err := h.service.Analyze(r.Context(), req.Image, req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.AnalyzeResponse{Response: answer})
}
