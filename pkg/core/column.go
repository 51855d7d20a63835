package core

import "strings"

// =============================================================================
// ValueType
// =============================================================================

// ValueType is the semantic type of a column, independent of any database.
type ValueType int

// Semantic value types understood by dialects.
const (
	TypeNone ValueType = iota
	TypeNumber
	TypeString
	TypeDate
	TypeBoolean
	TypeInteger
	TypeBigNumber
	TypeSerializable
	TypeBinary
	TypeTimestamp
	TypeInet
)

var valueTypeNames = map[ValueType]string{
	TypeNone:         "none",
	TypeNumber:       "number",
	TypeString:       "string",
	TypeDate:         "date",
	TypeBoolean:      "boolean",
	TypeInteger:      "integer",
	TypeBigNumber:    "bignumber",
	TypeSerializable: "serializable",
	TypeBinary:       "binary",
	TypeTimestamp:    "timestamp",
	TypeInet:         "inet",
}

// String returns the lowercase name of the value type.
func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseValueType converts a type name to a ValueType.
// Returns TypeNone and false if the name is not recognized.
func ParseValueType(s string) (ValueType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range valueTypeNames {
		if name == s {
			return t, true
		}
	}
	return TypeNone, false
}

// UnmarshalText lets ValueType be decoded from config and YAML column files.
func (t *ValueType) UnmarshalText(text []byte) error {
	v, ok := ParseValueType(string(text))
	if !ok {
		return &UnknownValueTypeError{Name: string(text)}
	}
	*t = v
	return nil
}

// UnknownValueTypeError is returned when a type name cannot be parsed.
type UnknownValueTypeError struct {
	Name string
}

func (e *UnknownValueTypeError) Error() string {
	return "unknown value type " + strings.TrimSpace(e.Name)
}

// =============================================================================
// ColumnSpec
// =============================================================================

// ClobLength is the string length at or above which a column is always stored as a CLOB.
const ClobLength = 9999999

// ColumnSpec describes a column a dialect should render DDL for.
// Length and Precision of zero or less mean "not specified".
type ColumnSpec struct {
	Name      string    `yaml:"name"`
	Type      ValueType `yaml:"type"`
	Length    int       `yaml:"length"`
	Precision int       `yaml:"precision"`
}

// Clone returns an independent copy of the column.
func (c ColumnSpec) Clone() ColumnSpec {
	return c
}

// WithName returns a copy of the column carrying a different name.
func (c ColumnSpec) WithName(name string) ColumnSpec {
	out := c.Clone()
	out.Name = name
	return out
}
