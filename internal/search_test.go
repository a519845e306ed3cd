package internal_test

import (
	"strings"
	"testing"

	"github.com/cgint/vscode-chat-extractor/internal"
	"github.com/cgint/vscode-chat-extractor/testutil"
)

func TestSearchStore(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	testutil.InsertRecord(t, db, internal.TableDiskKV,
		"bubbleId:c1:001", `{"type":1,"text":"find the needle here"}`)
	testutil.InsertRecord(t, db, internal.TableItemTable,
		"someSetting", "plain needle text")
	testutil.InsertRecord(t, db, internal.TableDiskKV,
		"bubbleId:c1:002", `{"type":2,"text":"nothing relevant"}`)

	matches, err := internal.SearchStore(db, "needle")
	if err != nil {
		t.Fatalf("SearchStore() error: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}

	byTable := map[string]internal.SearchMatch{}
	for _, m := range matches {
		byTable[m.Table] = m
	}

	jsonMatch, ok := byTable[internal.TableDiskKV]
	if !ok {
		t.Fatal("no match from cursorDiskKV")
	}
	if jsonMatch.Kind != "json" {
		t.Errorf("cursorDiskKV match kind = %q, want json", jsonMatch.Kind)
	}
	if !strings.Contains(jsonMatch.Context, "needle") {
		t.Errorf("context %q should contain the term", jsonMatch.Context)
	}

	textMatch, ok := byTable[internal.TableItemTable]
	if !ok {
		t.Fatal("no match from ItemTable")
	}
	if textMatch.Kind != "text" {
		t.Errorf("ItemTable match kind = %q, want text", textMatch.Kind)
	}
}

func TestSearchStoreBinaryStrings(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	blob := append([]byte{0x00, 0x01, 0xff, 0xfe}, []byte("needle in a binary blob")...)
	blob = append(blob, 0x00, 0x80, 0xff, 0x01)
	testutil.InsertRecord(t, db, internal.TableDiskKV, "blobKey", blob)

	matches, err := internal.SearchStore(db, "needle")
	if err != nil {
		t.Fatalf("SearchStore() error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}

	m := matches[0]
	if m.Kind != "binary" {
		t.Errorf("kind = %q, want binary", m.Kind)
	}
	if len(m.Strings) == 0 {
		t.Fatal("binary match should carry extracted printable runs")
	}
	if !strings.Contains(m.Strings[0], "needle") {
		t.Errorf("extracted run %q should contain the term", m.Strings[0])
	}
}

func TestSearchStoreNoMatches(t *testing.T) {
	db := testutil.CreateTestDB(t)

	matches, err := internal.SearchStore(db, "zzz-not-present")
	if err != nil {
		t.Fatalf("SearchStore() error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestSearchStoreEmptyTerm(t *testing.T) {
	db := testutil.CreateTestDB(t)

	matches, err := internal.SearchStore(db, "")
	if err != nil {
		t.Fatalf("SearchStore() error: %v", err)
	}
	if matches != nil {
		t.Errorf("empty term should match nothing, got %+v", matches)
	}
}
