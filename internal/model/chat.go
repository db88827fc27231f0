package model

import "time"

// Chat message author roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry in a chat transcript.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Products  []Product `json:"products,omitempty"`
}

// ChatSearchRequest is the payload of the product search fallback.
type ChatSearchRequest struct {
	Message string `json:"message"`
}

// ChatSearchResponse is the reply of the product search fallback: a text
// reply plus up to a few matching published products.
type ChatSearchResponse struct {
	Reply    string    `json:"reply"`
	Products []Product `json:"products"`
}
