package dto

import (
	"io"
)

// Upload is an image received from a client, not yet stored.
type Upload struct {
	Body     io.Reader
	Size     int64
	Filename string
	// ContentType is the client's hint; the stored type is sniffed from the bytes.
	ContentType string
}

type CreateDiary struct {
	Title    string
	Content  string
	IsPublic bool
	Image    *Upload
}

// UpdateDiary carries a partial update: nil fields are left untouched.
type UpdateDiary struct {
	Title    *string
	Content  *string
	IsPublic *bool
	Image    *Upload
}

// DiaryPatch is what the record store applies to an existing diary.
type DiaryPatch struct {
	Title         *string
	Content       *string
	IsPublic      *bool
	ImageURL      *string
	ResetAnalysis bool
}

// AnalysisRequest is published when a diary gets a new image.
type AnalysisRequest struct {
	DiaryID  string `json:"diaryId"`
	ImageURL string `json:"imageUrl"`
}

// AnalysisResult is produced by the analysis worker. ImageURL echoes the request
// it answers.
type AnalysisResult struct {
	DiaryID  string  `json:"diaryId"`
	ImageURL string  `json:"imageUrl"`
	Species  *string `json:"species"`
	Action   *string `json:"action"`
}

type Message struct {
	Message string `json:"message"`
}
