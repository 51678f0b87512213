package request_models

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	// ChatRoleBot is the web client's name for assistant turns.
	ChatRoleBot = "bot"
)

// ChatRequest carries the whole conversation so far, oldest first. The last message is the
// user turn to answer.
type ChatRequest struct {
	Conversation []ChatMessage `json:"conversation" binding:"required,min=1,dive"`
}

type ChatMessage struct {
	Role string `json:"role" binding:"required"`
	Text string `json:"text" binding:"required"`
}
