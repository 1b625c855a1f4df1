package gemini

import (
	"errors"
	"fmt"
)

// Upstream roles accepted by the generative-language API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Part is one fragment of a content turn.
type Part struct {
	Text string `json:"text"`
}

// Content is a single turn of the upstream conversation payload.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// GenerateContentRequest is the body sent to models/<model>:generateContent.
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

// GenerateContentResponse is the upstream success envelope.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generated completion.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// ErrEmptyResponse is returned when a 2xx envelope carries no candidate
// text. The caller gets a typed error rather than a placeholder string.
var ErrEmptyResponse = errors.New("gemini: response contains no candidate text")

// Text returns the first candidate's first text part.
func (r *GenerateContentResponse) Text() (string, error) {
	if len(r.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", ErrEmptyResponse
	}
	return parts[0].Text, nil
}

// apiErrorEnvelope is the upstream failure envelope, {"error":{...}}.
type apiErrorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// StatusError is a non-2xx upstream response. Message is taken from the
// error envelope when present.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API Error %d", e.StatusCode)
}

// Transient reports whether the status is recoverable by switching model
// or waiting: 404 (model temporarily unavailable), 429, 500.
func (e *StatusError) Transient() bool {
	switch e.StatusCode {
	case 404, 429, 500:
		return true
	}
	return false
}
