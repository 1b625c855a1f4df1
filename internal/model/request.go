package model

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Prompt  string `json:"prompt" binding:"required"`
	History []Turn `json:"history,omitempty"`
}

// Turn is one message of caller-supplied chat history. Roles "assistant"
// and "model" map to the upstream model role, anything else to user.
// Turns with empty content are dropped.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ExportRequest is the body of POST /exportPDF.
type ExportRequest struct {
	Content string `json:"content" binding:"required"`
}
