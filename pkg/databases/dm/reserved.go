package dm

import (
	"sort"
	"strings"
	"unicode"
)

// reservedWords need double quotes when used as identifiers.
var reservedWords = []string{
	"ACCESS", "ADD", "ALL", "ALTER", "AND", "ANY", "ARRAYLEN", "AS", "ASC", "AUDIT", "BETWEEN", "BY",
	"CHAR", "CHECK", "CLUSTER", "COLUMN", "COMMENT", "COMPRESS", "CONNECT", "CREATE", "CURRENT",
	"DATE", "DECIMAL", "DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE", "EXCLUSIVE", "EXISTS",
	"FILE", "FLOAT", "FOR", "FROM", "GRANT", "GROUP", "HAVING", "IDENTIFIED", "IMMEDIATE", "IN",
	"INCREMENT", "INDEX", "INITIAL", "INSERT", "INTEGER", "INTERSECT", "INTO", "IS", "LEVEL", "LIKE",
	"LOCK", "LONG", "MAXEXTENTS", "MINUS", "MODE", "MODIFY", "NOAUDIT", "NOCOMPRESS", "NOT",
	"NOTFOUND", "NOWAIT", "NULL", "NUMBER", "OF", "OFFLINE", "ON", "ONLINE", "OPTION", "OR", "ORDER",
	"PCTFREE", "PRIOR", "PRIVILEGES", "PUBLIC", "RAW", "RENAME", "RESOURCE", "REVOKE", "ROW", "ROWID",
	"ROWLABEL", "ROWNUM", "ROWS", "SELECT", "SESSION", "SET", "SHARE", "SIZE", "SMALLINT", "SQLBUF",
	"START", "SUCCESSFUL", "SYNONYM", "SYSDATE", "TABLE", "THEN", "TO", "TRIGGER", "UID", "UNION",
	"UNIQUE", "UPDATE", "USER", "VALIDATE", "VALUES", "VARCHAR", "VARCHAR2", "VIEW", "WHENEVER",
	"WHERE", "WITH", "PATH", "TRXID", "XML",
}

var reservedSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(reservedWords))
	for _, w := range reservedWords {
		m[w] = struct{}{}
	}
	return m
}()

// ReservedWords returns the DM reserved words, sorted.
func (d *Dialect) ReservedWords() []string {
	out := append([]string(nil), reservedWords...)
	sort.Strings(out)
	return out
}

// IsReservedWord checks if a word is reserved. The check is case-insensitive
// since unquoted DM identifiers are folded to upper case.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := reservedSet[strings.ToUpper(word)]
	return ok
}

// QuotedSchemaTable returns schema.table, double-quoting each part that is a
// reserved word or contains characters an unquoted identifier cannot.
func (d *Dialect) QuotedSchemaTable(schema, table string) string {
	if schema == "" {
		return d.quoteIdentifier(table)
	}
	return d.quoteIdentifier(schema) + "." + d.quoteIdentifier(table)
}

func (d *Dialect) quoteIdentifier(name string) string {
	if name == "" || isQuoted(name) {
		return name
	}
	if d.IsReservedWord(name) || needsQuoting(name) {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}

func isQuoted(name string) bool {
	return len(name) >= 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`)
}

func needsQuoting(name string) bool {
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || r == '#':
		case unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			return true
		}
	}
	return false
}
