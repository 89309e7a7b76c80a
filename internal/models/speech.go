package models

// SpeechRequest represents request for speech endpoint
type SpeechRequest struct {
	Text string `json:"text" validate:"required" example:"I see a cat."`
}

type TranscribeResponse struct {
	Text string `json:"text" example:"what is in front of me"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Missing 'image' in request"`
}
