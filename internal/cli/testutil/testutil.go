// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	// sqlite stands in for a DM server in CLI tests.
	_ "modernc.org/sqlite"
)

// catalogSchema creates the DM catalog views a target database needs for the
// sequence and index commands, as plain tables.
const catalogSchema = `
CREATE TABLE ORDERS (ID INTEGER, CUSTOMER_ID INTEGER, AMOUNT REAL);
CREATE TABLE USER_SEQUENCES (SEQUENCE_NAME TEXT);
CREATE TABLE all_sequences (SEQUENCE_NAME TEXT, SEQUENCE_OWNER TEXT);
CREATE TABLE USER_IND_COLUMNS (INDEX_NAME TEXT, TABLE_NAME TEXT, COLUMN_NAME TEXT);
INSERT INTO USER_SEQUENCES VALUES ('SEQ_ORDERS');
INSERT INTO all_sequences VALUES ('SEQ_ORDERS', 'SALES'), ('SEQ_ITEMS', 'SALES');
INSERT INTO USER_IND_COLUMNS VALUES ('PK_ORDERS', 'ORDERS', 'ID'), ('IDX_ORDERS_CUST', 'ORDERS', 'CUSTOMER_ID');
`

// TestProject is a temporary working directory with a dbdialect.yaml whose
// target is a SQLite database seeded with DM catalog tables.
type TestProject struct {
	Dir    string
	DBPath string
}

// SetupTestProject creates a test project and changes into its directory.
func SetupTestProject(t *testing.T) *TestProject {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "target.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open target database: %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, stmt := range strings.Split(catalogSchema, ";\n") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(context.Background(), stmt); err != nil {
			t.Fatalf("failed to seed target database: %v", err)
		}
	}

	cfg := `target:
  type: dm
  host: localhost
  database: SALES
  schema: SALES
  driver: sqlite
  dsn: ` + dbPath + `
`
	WriteFile(t, dir, "dbdialect.yaml", cfg)
	t.Chdir(dir)

	return &TestProject{Dir: dir, DBPath: dbPath}
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown checks for balanced code fences.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()
	if n := strings.Count(md, "```"); n%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", n)
	}
}
