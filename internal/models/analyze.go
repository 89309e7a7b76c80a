package models

// AnalyzeRequest represents request for analyze endpoint
type AnalyzeRequest struct {
	Image string `json:"image" validate:"required" example:"/9j/4AAQSkZJRgABAQAAAQABAAD..."`
	Text  string `json:"text" example:"Is the door open?"`
}

type AnalyzeResponse struct {
	Response string `json:"response" example:"I see a cat."`
}
