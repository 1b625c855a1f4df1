package model

// GenerateResponse is the success body of POST /generate.
type GenerateResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}

// ErrorResponse is the error body shared by all endpoints. Response
// carries a human-readable fallback message on generation failures and is
// omitted elsewhere.
type ErrorResponse struct {
	Error    string `json:"error"`
	Response string `json:"response,omitempty"`
}
