package handler

type ChatRequest struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type TurnResponse struct {
	ID        int64  `json:"id"`
	Input     string `json:"input"`
	Intent    string `json:"intent"`
	Asset     string `json:"asset"`
	Reply     string `json:"reply"`
	CreatedAt string `json:"created_at"`
}

type TranscriptResponse struct {
	SessionID string         `json:"session_id"`
	Turns     []TurnResponse `json:"turns"`
	Total     int            `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}
