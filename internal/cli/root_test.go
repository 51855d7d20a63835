package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/dbdialect/internal/cli/config"
	"github.com/leapstack-labs/dbdialect/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Register the DM dialect
	_ "github.com/leapstack-labs/dbdialect/pkg/databases/dm"
)

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func decodeJSON(t *testing.T, s string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(s), v), "output: %s", s)
}

func TestURL(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name   string
		args   []string
		driver string
		url    string
	}{
		{
			name:   "native with default port",
			args:   []string{"--host", "db1", "--database", "SALES"},
			driver: "dm",
			url:    "dm://db1:5236/SALES",
		},
		{
			name:   "native explicit port",
			args:   []string{"--host", "db1", "--port", "5237", "--database", "/SALES"},
			driver: "dm",
			url:    "dm://db1:5237/SALES",
		},
		{
			name:   "odbc",
			args:   []string{"--access", "odbc", "--database", "DM_DSN"},
			driver: "odbc",
			url:    "odbc:DM_DSN",
		},
		{
			name:   "dsn override",
			args:   []string{"--dsn", "dm://SYSDBA@db1:5236", "--driver", "pgx"},
			driver: "pgx",
			url:    "dm://SYSDBA@db1:5236",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, append([]string{"url", "-o", "json"}, tt.args...)...)
			require.NoError(t, err)

			var got map[string]string
			decodeJSON(t, out, &got)
			assert.Equal(t, tt.driver, got["driver"])
			assert.Equal(t, tt.url, got["url"])
		})
	}
}

func TestURL_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := runCLI(t, "url", "--host", "db1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database name must be specified")

	_, _, err = runCLI(t, "url", "--access", "jndi", "--database", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported access mode")

	_, _, err = runCLI(t, "url", "--dialect", "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dialect type "mysql"`)
}

func TestURL_TextOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "url", "-o", "text", "--database", "SALES")
	require.NoError(t, err)
	assert.Contains(t, out, "dm://localhost:5236/SALES")
	testutil.AssertNoANSI(t, out)
}

func TestInfo(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "info", "-o", "json")
	require.NoError(t, err)

	var info struct {
		Name          string          `json:"name"`
		AccessModes   []string        `json:"access_modes"`
		DefaultPort   int             `json:"default_port"`
		Driver        string          `json:"driver"`
		HelpURL       string          `json:"help_url"`
		ReservedWords int             `json:"reserved_words"`
		Capabilities  map[string]any  `json:"capabilities"`
		Libraries     json.RawMessage `json:"libraries"`
	}
	decodeJSON(t, out, &info)

	assert.Equal(t, "dm", info.Name)
	assert.Equal(t, []string{"native", "jndi"}, info.AccessModes)
	assert.Equal(t, 5236, info.DefaultPort)
	assert.Equal(t, "dm", info.Driver)
	assert.Equal(t, "https://eco.dameng.com/document/dm/zh-cn/pm/", info.HelpURL)
	assert.Equal(t, 115, info.ReservedWords)
	assert.Equal(t, true, info.Capabilities["supports_sequences"])
	assert.InDelta(t, 32, info.Capabilities["max_columns_in_index"], 0)
	assert.Contains(t, string(info.Libraries), "Dm7JdbcDriver18.jar")
}

func TestInfo_Markdown(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "| max varchar length | 2000 |")
	testutil.AssertNoANSI(t, out)
}

func TestInfo_ReservedWords(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "info", "--reserved-words", "-o", "text")
	require.NoError(t, err)
	words := strings.Fields(out)
	assert.Len(t, words, 115)
	assert.Contains(t, words, "ROWNUM")
}

func TestDialects(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "dialects", "-o", "json")
	require.NoError(t, err)

	var got []map[string]string
	decodeJSON(t, out, &got)
	assert.Contains(t, got, map[string]string{"Name": "dm", "Description": "DM (Dameng) Database"})
}

func TestDDL(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	columns := testutil.WriteFile(t, dir, "columns.yaml", `columns:
  - name: id
    type: integer
  - name: title
    type: string
    length: 80
  - name: body
    type: String
    length: 5000
`)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "field",
			args:     []string{"ddl", "field", "--name", "title", "--type", "string", "--length", "80"},
			expected: "title VARCHAR2(80)\n",
		},
		{
			name:     "field without name",
			args:     []string{"ddl", "field", "--type", "number", "--length", "12", "--precision", "2"},
			expected: "NUMBER(12, 2)\n",
		},
		{
			name:     "add from file",
			args:     []string{"ddl", "add", "ORDERS", "--columns", columns},
			expected: "ALTER TABLE ORDERS ADD id INTEGER;\nALTER TABLE ORDERS ADD title VARCHAR2(80);\nALTER TABLE ORDERS ADD body CLOB\n",
		},
		{
			name:     "drop",
			args:     []string{"ddl", "drop", "ORDERS", "--name", "title", "--type", "string"},
			expected: "ALTER TABLE ORDERS DROP COLUMN title\n",
		},
		{
			name: "modify",
			args: []string{"ddl", "modify", "ORDERS", "--name", "flag", "--type", "boolean"},
			expected: "ALTER TABLE ORDERS ADD flag_KTL CHAR(1);\n" +
				"UPDATE ORDERS SET flag_KTL=flag;\n" +
				"ALTER TABLE ORDERS DROP COLUMN flag;\n" +
				"ALTER TABLE ORDERS ADD flag CHAR(1);\n" +
				"UPDATE ORDERS SET flag=flag_KTL;\n" +
				"ALTER TABLE ORDERS DROP COLUMN flag_KTL\n",
		},
		{
			name: "drop table",
			args: []string{"ddl", "drop-table", "STAGE"},
			expected: "DECLARE num NUMBER; BEGIN SELECT COUNT(1) INTO num FROM USER_TABLES WHERE TABLE_NAME = UPPER('STAGE'); " +
				"IF num > 0 THEN EXECUTE IMMEDIATE 'DROP TABLE STAGE'; END IF; END;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, append(tt.args, "-o", "text")...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestDDL_Errors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := runCLI(t, "ddl", "field", "--type", "varchar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown value type varchar")

	_, _, err = runCLI(t, "ddl", "add", "ORDERS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --type or --columns is required")

	bad := testutil.WriteFile(t, dir, "bad.yaml", "columns:\n  - name: x\n    type: money\n")
	_, _, err = runCLI(t, "ddl", "add", "ORDERS", "--columns", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown value type money")

	empty := testutil.WriteFile(t, dir, "empty.yaml", "columns: []\n")
	_, _, err = runCLI(t, "ddl", "add", "ORDERS", "--columns", empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defines no columns")
}

func TestDDL_Markdown(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "ddl", "field", "--type", "date")
	require.NoError(t, err)
	assert.Equal(t, "```sql\nDATE\n```\n", out)
	testutil.AssertValidMarkdown(t, out)
}

func TestQuote(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "quote", "-o", "text", "it's\nhere")
	require.NoError(t, err)
	assert.Equal(t, "'it''s'||chr(13)||'here'\n", out)

	out, _, err = runCLI(t, "quote", "-o", "text", "--ident", "sales.user")
	require.NoError(t, err)
	assert.Equal(t, "sales.\"user\"\n", out)

	out, _, err = runCLI(t, "quote", "-o", "json", "--ident", "orders")
	require.NoError(t, err)
	var got map[string]string
	decodeJSON(t, out, &got)
	assert.Equal(t, "orders", got["quoted"])
}

func TestLock(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "lock", "-o", "text", "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "LOCK TABLE A IN EXCLUSIVE MODE;\nLOCK TABLE B IN EXCLUSIVE MODE;\n\n", out)

	out, _, err = runCLI(t, "lock", "-o", "json", "--unlock", "A")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sql": ""}`, out)
}

func TestSequence_Print(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"sequence", "exists", "seq_orders"}, "SELECT * FROM USER_SEQUENCES WHERE SEQUENCE_NAME = 'SEQ_ORDERS'\n"},
		{[]string{"sequence", "exists", "sales.seq_orders"}, "SELECT * FROM ALL_SEQUENCES WHERE SEQUENCE_NAME = 'SEQ_ORDERS' AND SEQUENCE_OWNER = 'SALES'\n"},
		{[]string{"sequence", "current", "seq_orders"}, "SELECT seq_orders.currval FROM DUAL\n"},
		{[]string{"sequence", "next", "seq_orders"}, "SELECT seq_orders.nextval FROM dual\n"},
		{[]string{"sequence", "list"}, "SELECT SEQUENCE_NAME FROM all_sequences\n"},
		{[]string{"procedures"}, "SELECT name FROM ORM_FUNCTIONS union SELECT name FROM ORM_PROCEDURES\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := runCLI(t, append(tt.args, "-o", "text")...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestSequence_Run(t *testing.T) {
	testutil.SetupTestProject(t)

	out, _, err := runCLI(t, "sequence", "exists", "seq_orders", "--run", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = runCLI(t, "sequence", "exists", "sales.seq_items", "--run", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"exists": true}`, out)

	out, _, err = runCLI(t, "sequence", "exists", "seq_missing", "--run", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, _, err = runCLI(t, "sequence", "list", "--run", "-o", "json")
	require.NoError(t, err)
	var rows []map[string]any
	decodeJSON(t, out, &rows)
	assert.Len(t, rows, 2)

	// DUAL and currval are DM-only
	_, _, err = runCLI(t, "sequence", "current", "seq_orders", "--run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute query")
}

func TestProbe(t *testing.T) {
	testutil.SetupTestProject(t)

	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"probe", "table", "ORDERS"}, "true\n"},
		{[]string{"probe", "table", "MISSING"}, "false\n"},
		{[]string{"probe", "column", "ORDERS", "AMOUNT"}, "true\n"},
		{[]string{"probe", "column", "ORDERS", "STATUS"}, "false\n"},
		{[]string{"probe", "table", "ORDERS", "--sql"}, "SELECT * FROM ORDERS WHERE 1=0\n"},
		{[]string{"probe", "column", "ORDERS", "AMOUNT", "--sql"}, "SELECT AMOUNT FROM ORDERS WHERE 1=0\n"},
		{[]string{"probe", "fields", "ORDERS"}, "SELECT * FROM ORDERS WHERE 1=0\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := runCLI(t, append(tt.args, "-o", "text")...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestIndexExists(t *testing.T) {
	testutil.SetupTestProject(t)

	out, _, err := runCLI(t, "index-exists", "ORDERS", "ID", "customer_id", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"indexed": true}`, out)

	out, _, err = runCLI(t, "index-exists", "ORDERS", "ID", "AMOUNT", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, _, err = runCLI(t, "index-exists", "CUSTOMERS", "ID", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestExec(t *testing.T) {
	p := testutil.SetupTestProject(t)
	script := testutil.WriteFile(t, p.Dir, "migrate.sql", `
CREATE TABLE STAGE (ID INTEGER, NOTE TEXT);
INSERT INTO STAGE VALUES (1, 'a;b');
/* trailing comment */
`)

	out, _, err := runCLI(t, "exec", "--file", script, "--dry-run", "-o", "json")
	require.NoError(t, err)
	var stmts []string
	decodeJSON(t, out, &stmts)
	assert.Equal(t, []string{"CREATE TABLE STAGE (ID INTEGER, NOTE TEXT)", "INSERT INTO STAGE VALUES (1, 'a;b')"}, stmts)

	out, _, err = runCLI(t, "exec", "--file", script, "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "executed 2 statements\n", out)

	out, _, err = runCLI(t, "probe", "table", "STAGE", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	// the table now exists, so the first statement fails
	_, _, err = runCLI(t, "exec", "--file", script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement 1 of 2")
}

func TestExec_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := runCLI(t, "exec", "--file", filepath.Join(t.TempDir(), "nope.sql"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read script")

	_, _, err = runCLI(t, "exec")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "file" not set`)
}

func TestEnvironmentTarget(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	testutil.WriteFile(t, dir, "dbdialect.yaml", `target:
  host: dev-db
  database: SALES
environments:
  prod:
    target:
      host: prod-db
      port: "5300"
`)

	out, _, err := runCLI(t, "url", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "dm://dev-db:5236/SALES")

	out, _, err = runCLI(t, "url", "-o", "json", "-t", "prod")
	require.NoError(t, err)
	assert.Contains(t, out, "dm://prod-db:5300/SALES")
}

func TestVerboseLogging(t *testing.T) {
	testutil.SetupTestProject(t)

	_, stderr, err := runCLI(t, "-v", "probe", "table", "ORDERS", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, stderr, "using config file")
	assert.Contains(t, stderr, "connecting to database")
	assert.Contains(t, stderr, "SELECT * FROM ORDERS WHERE 1=0")

	_, stderr, err = runCLI(t, "probe", "table", "ORDERS", "-o", "text")
	require.NoError(t, err)
	assert.Empty(t, stderr, "debug logs are off without --verbose")
}

func TestVersionAndCompletion(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dbdialect v"+Version)

	out, _, err = runCLI(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "dbdialect")
}

func TestGetConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	_, _, err := runCLI(t, "dialects")
	require.NoError(t, err)

	cfg := GetConfig(context.Background())
	require.NotNil(t, cfg)
	assert.Equal(t, "dm", cfg.Target.Type)
}
