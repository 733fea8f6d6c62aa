package library

import "time"

type publishedVideoResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	PublishedAt     time.Time `json:"published_at"`
	DurationSeconds float64   `json:"duration_seconds"`
	Width           int       `json:"width"`
	Height          int       `json:"height"`
}

type publishedVideosResponse struct {
	Videos []publishedVideoResponse `json:"videos"`
	Count  int                      `json:"count"`
}
