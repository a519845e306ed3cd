package internal

// Sender values for a normalized message. The store marks user turns with
// type=1; everything else (including records with no type field) is treated
// as the assistant. There is no "unknown" state.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// RawRecord is one key-value pair read from the state database. Value is nil
// when the stored value is SQL NULL.
type RawRecord struct {
	Key   string
	Value []byte
}

// Attachment represents a file or symbol referenced by a message.
type Attachment struct {
	Type string `json:"type"` // "file_selection", "code_chunk_uri", "symbol_link", "symbol_link_error"
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

// CodeBlock represents a code block embedded in an assistant message.
type CodeBlock struct {
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
	URIPath  string `json:"uriPath,omitempty"`
}

// ToolOutput represents the result of a tool invocation referenced from a
// message. Data holds parsed JSON when the payload parses, otherwise the raw
// string.
type ToolOutput struct {
	ToolName string `json:"toolName,omitempty"`
	Status   string `json:"status,omitempty"`
	Data     any    `json:"data"`
}

// Message is the normalized unit produced from one message record.
// Attachments, CodeBlocks and ToolOutputs are always non-nil so they
// serialize as [] rather than null.
type Message struct {
	ID          string       `json:"id"`
	Sender      string       `json:"sender"`
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments"`
	CodeBlocks  []CodeBlock  `json:"codeBlocks"`
	ToolOutputs []ToolOutput `json:"toolOutputs"`
}

// Conversation groups all messages that share a conversation id, ordered by
// message id ascending.
type Conversation struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
}

// ConversationSummary is the catalog entry for one conversation. Derived and
// recomputed on each catalog build, never persisted.
type ConversationSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	MessageCount int    `json:"messageCount"`
}
