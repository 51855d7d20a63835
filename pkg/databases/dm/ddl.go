package dm

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/dbdialect/pkg/core"
)

const (
	maxVarcharLength  = 2000
	maxColumnsInIndex = 32

	// DM identifiers longer than this cannot take the temp suffix.
	tempNameMaxBase = 30
	tempNameSuffix  = "_KTL"

	lineBreak = "\n"
)

// FieldDefinition maps a column to its DM type. Unknown types render as
// " UNKNOWN" so the generated DDL fails loudly on the server.
func (d *Dialect) FieldDefinition(col core.ColumnSpec, _ bool, addName, addLineBreak bool) string {
	var b strings.Builder
	b.Grow(128)

	if addName {
		b.WriteString(col.Name)
		b.WriteByte(' ')
	}

	switch col.Type {
	case core.TypeTimestamp:
		b.WriteString("TIMESTAMP")
	case core.TypeDate:
		b.WriteString("DATE")
	case core.TypeBoolean:
		b.WriteString("CHAR(1)")
	case core.TypeInteger:
		b.WriteString("INTEGER")
	case core.TypeNumber, core.TypeBigNumber:
		b.WriteString("NUMBER")
		if col.Length > 0 {
			b.WriteByte('(')
			b.WriteString(strconv.Itoa(col.Length))
			if col.Precision > 0 {
				b.WriteString(", ")
				b.WriteString(strconv.Itoa(col.Precision))
			}
			b.WriteByte(')')
		}
	case core.TypeString:
		b.WriteString(stringType(col.Length))
	case core.TypeBinary:
		b.WriteString("BLOB")
	default:
		b.WriteString(" UNKNOWN")
	}

	if addLineBreak {
		b.WriteString(lineBreak)
	}
	return b.String()
}

func stringType(length int) string {
	switch {
	case length >= core.ClobLength:
		return "CLOB"
	case length == 1:
		return "CHAR(1)"
	case length > 0 && length <= maxVarcharLength:
		return "VARCHAR2(" + strconv.Itoa(length) + ")"
	case length <= 0:
		// unknown length, take the largest VARCHAR2
		return "VARCHAR2(" + strconv.Itoa(maxVarcharLength) + ")"
	default:
		return "CLOB"
	}
}

// AddColumnStatement returns ALTER TABLE ... ADD <definition>.
func (d *Dialect) AddColumnStatement(table string, col core.ColumnSpec, autoInc bool) string {
	return "ALTER TABLE " + table + " ADD " + d.FieldDefinition(col, autoInc, true, false)
}

// DropColumnStatement returns ALTER TABLE ... DROP COLUMN <name>.
func (d *Dialect) DropColumnStatement(table string, col core.ColumnSpec) string {
	return "ALTER TABLE " + table + " DROP COLUMN " + col.Name
}

// ModifyColumnStatement retypes a column without a rename primitive: the data
// is parked in a temporary column while the original is dropped and re-added.
// The statement order is significant.
func (d *Dialect) ModifyColumnStatement(table string, col core.ColumnSpec, autoInc bool) string {
	tmp := col.WithName(tempColumnName(col.Name))

	stmts := []string{
		d.AddColumnStatement(table, tmp, autoInc),
		"UPDATE " + table + " SET " + tmp.Name + "=" + col.Name,
		d.DropColumnStatement(table, col),
		d.AddColumnStatement(table, col, autoInc),
		"UPDATE " + table + " SET " + col.Name + "=" + tmp.Name,
		d.DropColumnStatement(table, tmp),
	}
	return strings.Join(stmts, ";"+lineBreak)
}

// tempColumnName truncates name to 30 characters and appends the temp suffix,
// keeping surrounding double quotes when present.
func tempColumnName(name string) string {
	quoted := len(name) >= 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`)
	if quoted {
		name = name[1 : len(name)-1]
	}

	if r := []rune(name); len(r) > tempNameMaxBase {
		name = string(r[:tempNameMaxBase])
	}
	name += tempNameSuffix

	if quoted {
		name = `"` + name + `"`
	}
	return name
}

// DropTableIfExistsStatement emulates DROP TABLE IF EXISTS with an anonymous
// block that checks the user catalog first.
func (d *Dialect) DropTableIfExistsStatement(table string) string {
	return "DECLARE num NUMBER; " +
		"BEGIN SELECT COUNT(1) INTO num FROM USER_TABLES WHERE TABLE_NAME = UPPER('" + table +
		"'); IF num > 0 THEN EXECUTE IMMEDIATE 'DROP TABLE " + table + "'; END IF; END;"
}
