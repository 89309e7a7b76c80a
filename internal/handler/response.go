package handler

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/kdduha/vision-relay/internal/models"
)

const (
	msgNoJSONBody   = "No JSON body found"
	msgMissingImage = "Missing 'image' in request"
	msgMissingText  = "Missing 'text' in request"
	msgMissingFile  = "Missing 'file' in request"
)

// decodeJSON reports false for an absent, unparseable or null body.
func decodeJSON[T any](r *http.Request) (*T, bool) {
	var req *T
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, false
	}
	return req, req != nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// writeServiceError is the single place adapter failures become responses.
// Every error is a 500 carrying the raw error text.
func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, err.Error())
}
