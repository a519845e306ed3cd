package internal

import (
	"sort"
	"strings"
)

// DefaultKeyPrefix is the fixed first segment of message record keys. Some
// store generations write "cursor_bubbleId" instead; the prefix is therefore
// configurable everywhere it is consumed.
const DefaultKeyPrefix = "bubbleId"

// ParseRecordKey splits a record key against the convention
// "<prefix>:<conversationId>:<messageId>". A key with the wrong prefix or a
// segment count other than exactly three does not identify a message record.
func ParseRecordKey(key, prefix string) (conversationID, messageID string, ok bool) {
	rest, found := strings.CutPrefix(key, prefix+":")
	if !found {
		return "", "", false
	}
	parts := strings.Split(rest, ":")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// GroupRecords partitions message records into per-conversation buckets.
// Records with malformed keys are skipped silently; records whose value does
// not decode to a JSON object are skipped with a diagnostic. Every
// successfully normalized record lands in exactly one bucket, and a bucket
// exists only if at least one record matched.
//
// Buckets are sorted by message id using plain lexicographic string compare.
// That can misorder ids like "9" vs "10", but downstream consumers depend on
// the existing order, so it stays.
func GroupRecords(records []RawRecord, prefix string) map[string][]Message {
	groups := make(map[string][]Message)

	for _, rec := range records {
		conversationID, messageID, ok := ParseRecordKey(rec.Key, prefix)
		if !ok {
			continue
		}

		decoded := Decode(rec.Value)
		if decoded.Kind != KindJSON {
			LogDebug("skipping record %s: value is %s, not a JSON object", rec.Key, decoded.Kind)
			continue
		}

		groups[conversationID] = append(groups[conversationID], NormalizeMessage(messageID, decoded.Object))
	}

	for id := range groups {
		msgs := groups[id]
		sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID < msgs[j].ID })
	}

	return groups
}
