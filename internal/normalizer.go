package internal

import (
	"encoding/json"
	"fmt"
	"path"
	"sort"
)

// NormalizeMessage converts one decoded JSON message object into a Message.
// It is total: a missing field, a field of the wrong type, or an unexpected
// nested shape degrades to the default for that field instead of failing.
// Even an empty object produces a valid assistant Message.
func NormalizeMessage(messageID string, obj map[string]any) Message {
	sender := SenderAssistant
	if n, ok := obj["type"].(float64); ok && n == 1 {
		sender = SenderUser
	}

	msg := Message{
		ID:          messageID,
		Sender:      sender,
		Text:        stringField(obj, "text"),
		Attachments: []Attachment{},
		CodeBlocks:  []CodeBlock{},
		ToolOutputs: []ToolOutput{},
	}

	switch sender {
	case SenderUser:
		msg.Attachments = extractUserAttachments(obj)
	case SenderAssistant:
		msg.CodeBlocks = extractCodeBlocks(obj)
		msg.Attachments = extractSymbolLinks(obj)
	}
	msg.Attachments = finalizeAttachments(msg.Attachments)

	msg.ToolOutputs = extractToolOutputs(obj)

	return msg
}

// extractUserAttachments collects file references from a user message.
// fileSelections take precedence over attachedFileCodeChunksUris when both
// resolve to the same basename.
func extractUserAttachments(obj map[string]any) []Attachment {
	attachments := []Attachment{}
	seen := map[string]bool{}

	ctx := mapField(obj, "context")
	for _, item := range listField(ctx, "fileSelections") {
		sel, ok := item.(map[string]any)
		if !ok {
			continue
		}
		uri := mapField(sel, "uri")
		filePath := stringField(uri, "fsPath", "path")
		if filePath == "" {
			continue
		}
		name := path.Base(filePath)
		attachments = append(attachments, Attachment{Type: "file_selection", Name: name, Path: filePath})
		seen[name] = true
	}

	for _, item := range listField(obj, "attachedFileCodeChunksUris") {
		chunk, ok := item.(map[string]any)
		if !ok {
			continue
		}
		filePath := stringField(chunk, "path")
		if filePath == "" {
			continue
		}
		name := path.Base(filePath)
		if seen[name] {
			continue
		}
		attachments = append(attachments, Attachment{Type: "code_chunk_uri", Name: name, Path: filePath})
		seen[name] = true
	}

	return attachments
}

// extractCodeBlocks collects code blocks from an assistant message.
func extractCodeBlocks(obj map[string]any) []CodeBlock {
	blocks := []CodeBlock{}
	for _, item := range listField(obj, "codeBlocks") {
		cb, ok := item.(map[string]any)
		if !ok {
			continue
		}
		uri := mapField(cb, "uri")
		blocks = append(blocks, CodeBlock{
			Language: stringField(cb, "languageId"),
			Content:  stringField(cb, "content"),
			URIPath:  stringField(uri, "path", "_fsPath"),
		})
	}
	return blocks
}

// extractSymbolLinks collects symbol link attachments from an assistant
// message. Entries are either JSON strings needing a nested parse or already
// structured objects. An entry that cannot be interpreted becomes a visible
// symbol_link_error attachment carrying the raw entry, so drift is debuggable
// instead of silently dropped.
func extractSymbolLinks(obj map[string]any) []Attachment {
	attachments := []Attachment{}
	for _, item := range listField(obj, "symbolLinks") {
		switch v := item.(type) {
		case map[string]any:
			attachments = append(attachments, symbolLinkAttachment(v))
		case string:
			var parsed map[string]any
			if err := json.Unmarshal([]byte(v), &parsed); err != nil || parsed == nil {
				attachments = append(attachments, Attachment{Type: "symbol_link_error", Name: v})
				continue
			}
			attachments = append(attachments, symbolLinkAttachment(parsed))
		default:
			attachments = append(attachments, Attachment{Type: "symbol_link_error", Name: fmt.Sprint(v)})
		}
	}
	return attachments
}

func symbolLinkAttachment(link map[string]any) Attachment {
	name := stringField(link, "symbolName")
	if name == "" {
		name = "N/A"
	}
	linkPath := stringField(link, "relativeWorkspacePath")
	if linkPath == "" {
		linkPath = "N/A"
	}
	return Attachment{Type: "symbol_link", Name: name, Path: linkPath}
}

// extractToolOutputs collects tool invocation results regardless of sender.
// toolFormerData is the primary container; interpreterResults and toolResults
// are observed schema variants for the same concept. Order of appearance is
// preserved.
func extractToolOutputs(obj map[string]any) []ToolOutput {
	outputs := []ToolOutput{}

	if tfd := mapField(obj, "toolFormerData"); tfd != nil {
		out := ToolOutput{
			ToolName: stringify(tfd["tool"]),
			Status:   stringField(tfd, "status"),
			Data:     tfd["result"],
		}
		// A string result is often JSON-in-a-string; resolve it now rather
		// than carrying an untyped value downstream.
		if raw, ok := out.Data.(string); ok {
			var parsed any
			if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
				out.Data = parsed
			}
		}
		outputs = append(outputs, out)
	}

	for _, container := range []string{"interpreterResults", "toolResults"} {
		for _, item := range listField(obj, container) {
			res, ok := item.(map[string]any)
			if !ok {
				continue
			}
			outputs = append(outputs, ToolOutput{
				ToolName: stringField(res, "toolName", "name"),
				Status:   stringField(res, "status"),
				Data:     anyField(res, "result", "output"),
			})
		}
	}

	return outputs
}

// finalizeAttachments deduplicates by name (first occurrence wins) and sorts
// so output ordering is independent of scan order.
func finalizeAttachments(attachments []Attachment) []Attachment {
	seen := map[string]bool{}
	unique := make([]Attachment, 0, len(attachments))
	for _, a := range attachments {
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		unique = append(unique, a)
	}
	sort.Slice(unique, func(i, j int) bool {
		if unique[i].Name != unique[j].Name {
			return unique[i].Name < unique[j].Name
		}
		return unique[i].Type < unique[j].Type
	})
	return unique
}

// Alias-tolerant field accessors. Candidate keys are tried in order and the
// first usable value wins, so adding a future schema variant is mechanical.

// stringField returns the first string value found under the candidate keys.
func stringField(obj map[string]any, keys ...string) string {
	if obj == nil {
		return ""
	}
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// mapField returns the first object value found under the candidate keys.
func mapField(obj map[string]any, keys ...string) map[string]any {
	if obj == nil {
		return nil
	}
	for _, key := range keys {
		if m, ok := obj[key].(map[string]any); ok {
			return m
		}
	}
	return nil
}

// listField returns the first array value found under the candidate keys.
func listField(obj map[string]any, keys ...string) []any {
	if obj == nil {
		return nil
	}
	for _, key := range keys {
		if l, ok := obj[key].([]any); ok {
			return l
		}
	}
	return nil
}

// anyField returns the first non-nil value found under the candidate keys.
func anyField(obj map[string]any, keys ...string) any {
	if obj == nil {
		return nil
	}
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// stringify renders a possibly non-string scalar as its string form, keeping
// "" for nil.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
