package internal

// Test fixtures shared across packages. Kept in the main package so export
// and server tests can build conversations without duplicating literals.

// CreateTestConversation builds a small two-message conversation.
func CreateTestConversation(id string) *Conversation {
	return &Conversation{
		ID: id,
		Messages: []Message{
			{
				ID:          "001",
				Sender:      SenderUser,
				Text:        "Hello, how are you?",
				Attachments: []Attachment{},
				CodeBlocks:  []CodeBlock{},
				ToolOutputs: []ToolOutput{},
			},
			{
				ID:          "002",
				Sender:      SenderAssistant,
				Text:        "Doing fine, thanks.",
				Attachments: []Attachment{},
				CodeBlocks:  []CodeBlock{},
				ToolOutputs: []ToolOutput{},
			},
		},
	}
}

// CreateTestConversationWithMessages builds a conversation around the given
// messages.
func CreateTestConversationWithMessages(id string, messages []Message) *Conversation {
	return &Conversation{ID: id, Messages: messages}
}
