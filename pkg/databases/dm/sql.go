package dm

import (
	"strconv"
	"strings"
)

// LimitClause returns a ROWNUM predicate limiting a query to n rows.
func (d *Dialect) LimitClause(n int) string {
	return " WHERE ROWNUM <= " + strconv.Itoa(n)
}

// SQLQueryFields returns a zero-row probe exposing the columns of table.
func (d *Dialect) SQLQueryFields(table string) string {
	return "SELECT * FROM " + table + " WHERE 1=0"
}

// SQLTableExists returns the zero-row probe used to test table existence.
func (d *Dialect) SQLTableExists(table string) string {
	return d.SQLQueryFields(table)
}

// SQLColumnExists returns the zero-row probe used to test column existence.
func (d *Dialect) SQLColumnExists(column, table string) string {
	return "SELECT " + column + " FROM " + table + " WHERE 1=0"
}

var literalReplacer = strings.NewReplacer(
	"'", "''",
	"\n", "'||chr(13)||'",
	"\r", "'||chr(10)||'",
)

// QuoteString renders s as a DM string literal. Line breaks become chr()
// concatenations so the literal stays a single expression.
func (d *Dialect) QuoteString(s string) string {
	return "'" + literalReplacer.Replace(s) + "'"
}

// SequenceExistsQuery looks the sequence up in USER_SEQUENCES, or in
// ALL_SEQUENCES filtered by owner when the name is schema-qualified.
func (d *Dialect) SequenceExistsQuery(sequence string) string {
	schema, name, qualified := strings.Cut(sequence, ".")
	if !qualified {
		return "SELECT * FROM USER_SEQUENCES WHERE SEQUENCE_NAME = '" + strings.ToUpper(sequence) + "'"
	}
	return "SELECT * FROM ALL_SEQUENCES WHERE SEQUENCE_NAME = '" + strings.ToUpper(name) +
		"' AND SEQUENCE_OWNER = '" + strings.ToUpper(schema) + "'"
}

// CurrentSequenceValueQuery returns the query reading the current value of sequence.
func (d *Dialect) CurrentSequenceValueQuery(sequence string) string {
	return "SELECT " + sequence + ".currval FROM DUAL"
}

// NextSequenceValueQuery returns the query advancing sequence.
func (d *Dialect) NextSequenceValueQuery(sequence string) string {
	return "SELECT " + sequence + ".nextval FROM dual"
}

// ListSequencesQuery returns the query listing every visible sequence.
func (d *Dialect) ListSequencesQuery() string {
	return "SELECT SEQUENCE_NAME FROM all_sequences"
}

// ListProceduresQuery returns the query listing stored functions and procedures.
func (d *Dialect) ListProceduresQuery() string {
	return "SELECT name FROM ORM_FUNCTIONS union SELECT name FROM ORM_PROCEDURES"
}

// LockTablesStatement locks every table in exclusive mode, one statement per line.
func (d *Dialect) LockTablesStatement(tables []string) string {
	var b strings.Builder
	b.Grow(128)
	for _, t := range tables {
		b.WriteString("LOCK TABLE ")
		b.WriteString(t)
		b.WriteString(" IN EXCLUSIVE MODE;")
		b.WriteString(lineBreak)
	}
	return b.String()
}

// UnlockTablesStatement returns "": DM releases table locks on commit.
func (d *Dialect) UnlockTablesStatement(_ []string) string {
	return ""
}
