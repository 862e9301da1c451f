package http

// RootMessage is returned by GET /
const RootMessage = "Ollama Weather Agent API is running. Send POST requests to /chat endpoint."

// --- Request DTOs ---

type chatReq struct {
	Text *string `json:"text" binding:"required"`
}

func (r chatReq) validate() error {
	if r.Text == nil {
		return errTextRequired
	}
	return nil
}

// --- Response DTOs ---

type chatResp struct {
	Response string `json:"response"`
}

func (h *handler) newChatResp(text string) chatResp {
	return chatResp{Response: text}
}
