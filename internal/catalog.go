package internal

import "sort"

const titleMaxLen = 70

// Summarize derives the catalog entry for one conversation. The title is the
// text of the lexicographically-smallest-id message with non-empty text,
// truncated to 70 characters; when no message qualifies it falls back to
// "Conversation {id}". Pure and idempotent: the same messages always produce
// the same summary.
func Summarize(conversationID string, messages []Message) ConversationSummary {
	title := ""
	bestID := ""
	found := false
	for _, msg := range messages {
		if msg.Text == "" {
			continue
		}
		if !found || msg.ID < bestID {
			title = msg.Text
			bestID = msg.ID
			found = true
		}
	}
	if title == "" {
		title = "Conversation " + conversationID
	}

	return ConversationSummary{
		ID:           conversationID,
		Title:        truncateTitle(title),
		MessageCount: len(messages),
	}
}

// ListAll builds summaries for all grouped conversations, sorted by
// conversation id for consistent listing.
func ListAll(groups map[string][]Message) []ConversationSummary {
	summaries := make([]ConversationSummary, 0, len(groups))
	for id, messages := range groups {
		summaries = append(summaries, Summarize(id, messages))
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= titleMaxLen {
		return title
	}
	return string(runes[:titleMaxLen-3]) + "..."
}
