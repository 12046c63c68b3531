package models

// ChatRequest is the body accepted by POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the single reply returned for a chat request.
// SessionID echoes the caller's session or the one generated for them.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}
