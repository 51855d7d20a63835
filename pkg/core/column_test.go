package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseValueType(t *testing.T) {
	tests := []struct {
		input  string
		want   ValueType
		wantOK bool
	}{
		{"string", TypeString, true},
		{"STRING", TypeString, true},
		{" bignumber ", TypeBigNumber, true},
		{"timestamp", TypeTimestamp, true},
		{"binary", TypeBinary, true},
		{"varchar", TypeNone, false},
		{"", TypeNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseValueType(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueType_String(t *testing.T) {
	assert.Equal(t, "integer", TypeInteger.String())
	assert.Equal(t, "inet", TypeInet.String())
	assert.Equal(t, "unknown", ValueType(99).String())
}

func TestColumnSpec_WithNameDoesNotTouchOriginal(t *testing.T) {
	orig := ColumnSpec{Name: "amount", Type: TypeNumber, Length: 10, Precision: 2}

	renamed := orig.WithName("amount_KTL")

	assert.Equal(t, "amount", orig.Name)
	assert.Equal(t, "amount_KTL", renamed.Name)
	assert.Equal(t, orig.Type, renamed.Type)
	assert.Equal(t, orig.Length, renamed.Length)
	assert.Equal(t, orig.Precision, renamed.Precision)
}

func TestColumnSpec_DecodeYAML(t *testing.T) {
	src := `
- name: id
  type: integer
- name: title
  type: string
  length: 120
`
	var cols []ColumnSpec
	require.NoError(t, yaml.Unmarshal([]byte(src), &cols))
	require.Len(t, cols, 2)
	assert.Equal(t, ColumnSpec{Name: "id", Type: TypeInteger}, cols[0])
	assert.Equal(t, ColumnSpec{Name: "title", Type: TypeString, Length: 120}, cols[1])

	err := yaml.Unmarshal([]byte("- name: x\n  type: varchar\n"), &cols)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown value type varchar")
}
