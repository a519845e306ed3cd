package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite database with the key-value
// tables found in a state database.
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"ItemTable", "cursorDiskKV"} {
		createTableSQL := `CREATE TABLE IF NOT EXISTS ` + table + ` (
			key TEXT PRIMARY KEY,
			value BLOB
		)`
		if _, err := db.Exec(createTableSQL); err != nil {
			t.Fatalf("Failed to create %s table: %v", table, err)
		}
	}

	return db
}

// CreateTestDB creates a test database seeded with two conversations, one
// malformed record and one NULL-valued record.
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db := CreateInMemoryDB(t)

	records := []struct {
		key   string
		value string
	}{
		{
			key:   "bubbleId:chat1:001",
			value: `{"type":1,"text":"Hello, can you fix my parser?"}`,
		},
		{
			key:   "bubbleId:chat1:002",
			value: `{"type":2,"text":"Sure.","codeBlocks":[{"languageId":"go","content":"func main() {}"}]}`,
		},
		{
			key:   "bubbleId:chat2:001",
			value: `{"type":1,"text":"How are you?"}`,
		},
		{
			key:   "bubbleId:chat2:002",
			value: `not valid json at all`,
		},
	}

	insertSQL := "INSERT INTO cursorDiskKV (key, value) VALUES (?, ?)"
	for _, rec := range records {
		if _, err := db.Exec(insertSQL, rec.key, rec.value); err != nil {
			t.Fatalf("Failed to insert record: %v", err)
		}
	}

	if _, err := db.Exec(insertSQL, "bubbleId:chat2:003", nil); err != nil {
		t.Fatalf("Failed to insert NULL record: %v", err)
	}

	return db
}

// InsertRecord inserts one key-value row into a table.
func InsertRecord(t *testing.T, db *sql.DB, table, key string, value any) {
	t.Helper()
	insertSQL := "INSERT INTO " + table + " (key, value) VALUES (?, ?)"
	if _, err := db.Exec(insertSQL, key, value); err != nil {
		t.Fatalf("Failed to insert record %s: %v", key, err)
	}
}

// CreateTestDBFile creates a seeded database as a file on disk, for code
// paths that open by path.
func CreateTestDBFile(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to create database file: %v", err)
	}
	defer db.Close()

	createTableSQL := `CREATE TABLE IF NOT EXISTS cursorDiskKV (
		key TEXT PRIMARY KEY,
		value BLOB
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create cursorDiskKV table: %v", err)
	}

	insertSQL := "INSERT INTO cursorDiskKV (key, value) VALUES (?, ?)"
	if _, err := db.Exec(insertSQL, "bubbleId:chat1:001", `{"type":1,"text":"Hello"}`); err != nil {
		t.Fatalf("Failed to seed database file: %v", err)
	}
}
