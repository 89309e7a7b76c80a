package main

import "time"

type AnalyzeRequest struct {
	Image string `json:"image"`
	Text  string `json:"text,omitempty"`
}

type AnalyzeResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

type BenchResult struct {
	File     string
	Duration time.Duration
	Chars    int
	Err      error
	Size     int64
}

type Agg struct {
	Count      int
	Failed     int
	Total      time.Duration
	TotalBytes int64
}
