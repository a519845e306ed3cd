package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Tables that hold key-value state in a VSCode/Cursor state database.
const (
	TableItemTable = "ItemTable"
	TableDiskKV    = "cursorDiskKV"
)

// OpenDatabase opens a state database in read-only mode. There is no write
// path anywhere in this tool.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	return db, nil
}

// QueryRecords reads (key, value) pairs from a key-value table, optionally
// filtered by a LIKE pattern on the key. A NULL value is kept as a nil byte
// slice so the decoder can report it as absent.
func QueryRecords(db *sql.DB, table, pattern string) ([]RawRecord, error) {
	query := fmt.Sprintf("SELECT key, value FROM %s", table)
	var args []any
	if pattern != "" {
		query += " WHERE key LIKE ?"
		args = append(args, pattern)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, &StorageError{Path: table, Op: "query", Err: err}
	}
	defer rows.Close()

	var records []RawRecord
	for rows.Next() {
		var rec RawRecord
		if err := rows.Scan(&rec.Key, &rec.Value); err != nil {
			return nil, &StorageError{Path: table, Op: "scan", Err: err}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageError{Path: table, Op: "scan", Err: err}
	}

	return records, nil
}

// ListTables returns the names of all user tables in the database.
func ListTables(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`
		SELECT name FROM sqlite_master
		WHERE type='table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, &StorageError{Path: "sqlite_master", Op: "query", Err: err}
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// HasTable reports whether the database contains the named table.
func HasTable(db *sql.DB, table string) (bool, error) {
	tables, err := ListTables(db)
	if err != nil {
		return false, err
	}
	for _, t := range tables {
		if t == table {
			return true, nil
		}
	}
	return false, nil
}
