package model

// ChatMessage is one role-tagged turn in an AI conversation, both on the
// upstream wire and in the cached rolling history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
