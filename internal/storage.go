package internal

import "database/sql"

// Storage extracts message records from the cursorDiskKV table and turns
// them into grouped conversations. Each call performs its own full scan;
// there is no cache and no shared mutable state, so concurrent callers only
// rely on SQLite's multi-reader guarantees.
type Storage struct {
	db     *sql.DB
	prefix string
}

// NewStorage creates a Storage over an open database. An empty prefix falls
// back to DefaultKeyPrefix.
func NewStorage(db *sql.DB, prefix string) *Storage {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Storage{db: db, prefix: prefix}
}

// KeyPrefix returns the message-record key prefix in use.
func (s *Storage) KeyPrefix() string {
	return s.prefix
}

// LoadMessageRecords reads all records whose key carries the message prefix.
// The LIKE pattern over-matches on metacharacters; ParseRecordKey rejects
// anything that is not an exact match.
func (s *Storage) LoadMessageRecords() ([]RawRecord, error) {
	return QueryRecords(s.db, TableDiskKV, s.prefix+":%")
}

// LoadConversationRecords reads the records of a single conversation.
func (s *Storage) LoadConversationRecords(conversationID string) ([]RawRecord, error) {
	return QueryRecords(s.db, TableDiskKV, s.prefix+":"+conversationID+":%")
}

// Conversations scans the store and groups all message records into
// per-conversation buckets.
func (s *Storage) Conversations() (map[string][]Message, error) {
	records, err := s.LoadMessageRecords()
	if err != nil {
		return nil, err
	}
	return GroupRecords(records, s.prefix), nil
}

// Conversation fetches one conversation by id. It returns nil when no
// message record matched, which callers surface as not-found rather than an
// error.
func (s *Storage) Conversation(conversationID string) (*Conversation, error) {
	records, err := s.LoadConversationRecords(conversationID)
	if err != nil {
		return nil, err
	}

	groups := GroupRecords(records, s.prefix)
	messages, ok := groups[conversationID]
	if !ok {
		return nil, nil
	}
	return &Conversation{ID: conversationID, Messages: messages}, nil
}

// Catalog scans the store and summarizes every conversation.
func (s *Storage) Catalog() ([]ConversationSummary, error) {
	groups, err := s.Conversations()
	if err != nil {
		return nil, err
	}
	return ListAll(groups), nil
}
