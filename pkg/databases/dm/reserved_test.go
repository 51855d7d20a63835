package dm

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservedWords(t *testing.T) {
	d := New(nil)
	words := d.ReservedWords()

	assert.Len(t, words, 115)
	assert.True(t, sort.StringsAreSorted(words))
	assert.Contains(t, words, "ROWNUM")
	assert.Contains(t, words, "TRXID")

	// callers get a copy
	words[0] = "CHANGED"
	assert.NotContains(t, d.ReservedWords(), "CHANGED")
}

func TestIsReservedWord(t *testing.T) {
	d := New(nil)

	for _, w := range []string{"select", "Select", "SYSDATE", "xml", "varchar2"} {
		assert.True(t, d.IsReservedWord(w), w)
	}
	for _, w := range []string{"orders", "amount", "", "SELECTED"} {
		assert.False(t, d.IsReservedWord(w), w)
	}
}

func TestQuotedSchemaTable(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		table    string
		expected string
	}{
		{"plain", "sales", "orders", "sales.orders"},
		{"no schema", "", "orders", "orders"},
		{"reserved table", "sales", "user", `sales."user"`},
		{"reserved schema", "public", "orders", `"public".orders`},
		{"special characters", "sales", "order items", `sales."order items"`},
		{"leading digit", "sales", "2024_orders", `sales."2024_orders"`},
		{"allowed symbols", "s$1", "t_#x", "s$1.t_#x"},
		{"already quoted", `"Sales"`, `"Orders"`, `"Sales"."Orders"`},
		{"embedded quote", "", `a"b`, `"a""b"`},
		{"unicode letters", "", "订单", "订单"},
	}

	d := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.QuotedSchemaTable(tt.schema, tt.table))
		})
	}
}
