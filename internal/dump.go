package internal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DumpReport summarizes one full store dump.
type DumpReport struct {
	Tables      int
	Rows        int
	JSONFiles   int
	TextFiles   int
	BinaryFiles int
	Skipped     int // rows with absent values
}

// ColumnInfo describes one column of a dumped table, taken from
// PRAGMA table_info.
type ColumnInfo struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	NotNull bool   `json:"notnull"`
	PK      bool   `json:"pk"`
}

// DumpStore writes every row of every user table to outDir for offline
// searching. Each table gets its own directory with a schema.json, a
// keys.txt listing, and one file per row: pretty-printed .json, .txt for
// readable text, or .bin for bytes kept as-is (no recovery attempted beyond
// the archival decode).
func DumpStore(db *sql.DB, outDir string) (*DumpReport, error) {
	tables, err := ListTables(db)
	if err != nil {
		return nil, err
	}

	report := &DumpReport{}
	for _, table := range tables {
		if err := dumpTable(db, table, outDir, report); err != nil {
			return nil, err
		}
		report.Tables++
	}
	return report, nil
}

func dumpTable(db *sql.DB, table, outDir string, report *DumpReport) error {
	tableDir := filepath.Join(outDir, table)
	if err := os.MkdirAll(tableDir, 0755); err != nil {
		return fmt.Errorf("failed to create dump directory: %w", err)
	}

	schema, err := tableSchema(db, table)
	if err != nil {
		return err
	}
	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(tableDir, "schema.json"), schemaJSON, 0644); err != nil {
		return err
	}

	records, err := QueryRecords(db, table, "")
	if err != nil {
		return err
	}

	var keys strings.Builder
	for _, rec := range records {
		keys.WriteString(rec.Key)
		keys.WriteByte('\n')
		report.Rows++

		decoded := DecodeArchival(rec.Value)
		name := sanitizeKey(rec.Key)

		switch decoded.Kind {
		case KindAbsent:
			report.Skipped++
		case KindJSON:
			if err := os.WriteFile(filepath.Join(tableDir, name+".json"), []byte(decoded.Text), 0644); err != nil {
				return err
			}
			report.JSONFiles++
		case KindText:
			if err := os.WriteFile(filepath.Join(tableDir, name+".txt"), []byte(decoded.Text), 0644); err != nil {
				return err
			}
			report.TextFiles++
		case KindBinary:
			if err := os.WriteFile(filepath.Join(tableDir, name+".bin"), decoded.Bytes, 0644); err != nil {
				return err
			}
			report.BinaryFiles++
		}
	}

	return os.WriteFile(filepath.Join(tableDir, "keys.txt"), []byte(keys.String()), 0644)
}

func tableSchema(db *sql.DB, table string) ([]ColumnInfo, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, &StorageError{Path: table, Op: "query", Err: err}
	}
	defer rows.Close()

	var columns []ColumnInfo
	for rows.Next() {
		var (
			cid     int
			notNull int
			pk      int
			dflt    sql.NullString
			col     ColumnInfo
		)
		if err := rows.Scan(&cid, &col.Name, &col.Type, &notNull, &dflt, &pk); err != nil {
			return nil, &StorageError{Path: table, Op: "scan", Err: err}
		}
		col.NotNull = notNull != 0
		col.PK = pk != 0
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

// sanitizeKey turns a record key into a safe file name. Very long keys are
// truncated; path separators, dots and colons become underscores.
func sanitizeKey(key string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ".", "_", ":", "_")
	name := replacer.Replace(key)
	if len(name) > 100 {
		name = name[:100]
	}
	if name == "" {
		name = "empty_key"
	}
	return name
}
