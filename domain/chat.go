package domain

// ChatMessage is one turn of a conversation relayed to the language model.
type ChatMessage struct {
	Role    Role   `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content"`
}
