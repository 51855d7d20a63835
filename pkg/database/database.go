// Package database provides the pluggable dialect contract for dbdialect's
// ETL database layer.
//
// This package contains the capability interface every database product must
// implement, the product registry, the error kinds dialects raise, and the
// host-side Session that runs dialect SQL over database/sql.
// Concrete dialect implementations are in pkg/databases/ subdirectories.
package database

import (
	"context"
	"database/sql"

	"github.com/leapstack-labs/dbdialect/pkg/core"
)

// Querier is the borrowed connection a dialect may run catalog queries on.
// *sql.DB, *sql.Conn and *sql.Tx all satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Dialect translates generic, database-agnostic requests into the SQL and
// connection conventions of one database product.
//
// Apart from IndexExists every method is a pure function of its arguments.
type Dialect interface {
	// Name returns the product identifier the dialect is registered under.
	Name() string

	// Description returns a human readable product name.
	Description() string

	// AccessModes lists the access modes the product can be reached with.
	AccessModes() []core.AccessMode

	// DefaultPort returns the product port for mode, or core.UnknownPort.
	DefaultPort(mode core.AccessMode) int

	// DriverName returns the database/sql driver name for mode.
	DriverName(mode core.AccessMode) string

	// BuildURL assembles the connection URL. It fails with a *ConfigurationError
	// for invalid parameters before any I/O takes place.
	BuildURL(host, port, databaseName string, mode core.AccessMode) (string, error)

	// LimitClause returns the fragment limiting a query to n rows.
	LimitClause(n int) string

	// SQLQueryFields returns a zero-row probe exposing the columns of table.
	SQLQueryFields(table string) string

	// SQLTableExists returns a query that fails when table does not exist.
	SQLTableExists(table string) string

	// SQLColumnExists returns a query that fails when column is not in table.
	SQLColumnExists(column, table string) string

	// FieldDefinition maps a column to its SQL type, optionally prefixed with
	// its name and followed by a line break.
	FieldDefinition(col core.ColumnSpec, autoInc, addName, addLineBreak bool) string

	AddColumnStatement(table string, col core.ColumnSpec, autoInc bool) string
	DropColumnStatement(table string, col core.ColumnSpec) string
	ModifyColumnStatement(table string, col core.ColumnSpec, autoInc bool) string
	DropTableIfExistsStatement(table string) string

	// QuoteString renders s as a single SQL string literal expression.
	QuoteString(s string) string

	SequenceExistsQuery(sequence string) string
	CurrentSequenceValueQuery(sequence string) string
	NextSequenceValueQuery(sequence string) string
	ListSequencesQuery() string
	ListProceduresQuery() string

	// LockTablesStatement returns the statements locking all tables.
	LockTablesStatement(tables []string) string

	// UnlockTablesStatement returns "" when the product unlocks implicitly.
	UnlockTablesStatement(tables []string) string

	// QuotedSchemaTable returns the schema-qualified, quoted-where-needed table name.
	QuotedSchemaTable(schema, table string) string

	ReservedWords() []string
	IsReservedWord(word string) bool

	// UsedLibraries lists the driver artifacts an operator must install.
	UsedLibraries() []string

	// ExtraOptionsHelpText returns a documentation reference for operators.
	ExtraOptionsHelpText() string

	// ScriptParser returns the parser that splits scripts for this product.
	ScriptParser() *ScriptParser

	// Capabilities returns the static behavioral flags of the product.
	Capabilities() core.Capabilities

	// IndexExists reports whether every field in fields is an indexed column of
	// table. It fails with a *QueryError when the catalog probe fails.
	IndexExists(ctx context.Context, q Querier, schema, table string, fields []string) (bool, error)
}

// Configurable is implemented by dialects that read product-specific settings
// from the target's options and params.
type Configurable interface {
	Configure(cfg core.TargetConfig) error
}
