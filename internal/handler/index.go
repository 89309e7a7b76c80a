package handler

import "net/http"

const Greeting = "Hello from your Heroku Flask app!"

// Index godoc
// @Summary Health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "Hello from your Heroku Flask app!"
// @Router / [get]
func Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Greeting))
}
