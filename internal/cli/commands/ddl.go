package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/leapstack-labs/dbdialect/pkg/core"
	"github.com/leapstack-labs/dbdialect/pkg/database"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DDLOptions holds the column options shared by the ddl subcommands.
type DDLOptions struct {
	Name      string
	Type      string
	Length    int
	Precision int
	Columns   string
	AutoInc   bool
}

// columnFile is the layout of a --columns file.
type columnFile struct {
	Columns []core.ColumnSpec `yaml:"columns"`
}

// NewDDLCommand creates the ddl command.
func NewDDLCommand() *cobra.Command {
	opts := &DDLOptions{}

	cmd := &cobra.Command{
		Use:   "ddl",
		Short: "Generate DDL for the configured dialect",
		Long: `Generate column definitions and ALTER/DROP statements in the SQL of the
configured dialect. Columns come from --name/--type/--length/--precision or
from a YAML file passed with --columns:

  columns:
    - name: id
      type: integer
    - name: title
      type: string
      length: 80`,
		Example: `  # Column definition
  dbdialect ddl field --name title --type string --length 80

  # Add every column of a file
  dbdialect ddl add ORDERS --columns columns.yaml

  # Retype a column
  dbdialect ddl modify ORDERS --name amount --type number --length 12 --precision 2

  # Drop a table if it exists
  dbdialect ddl drop-table STAGE_ORDERS`,
	}

	cmd.PersistentFlags().StringVar(&opts.Name, "name", "", "Column name")
	cmd.PersistentFlags().StringVar(&opts.Type, "type", "", "Column value type (string, number, integer, bignumber, date, timestamp, boolean, binary, ...)")
	cmd.PersistentFlags().IntVar(&opts.Length, "length", 0, "Column length")
	cmd.PersistentFlags().IntVar(&opts.Precision, "precision", 0, "Column precision")
	cmd.PersistentFlags().StringVar(&opts.Columns, "columns", "", "YAML file with column definitions")
	cmd.PersistentFlags().BoolVar(&opts.AutoInc, "auto-inc", false, "Generate auto-increment columns")

	cmd.AddCommand(newDDLColumnCommand(opts, "field", "Show column type definitions", cobra.NoArgs,
		func(d database.Dialect, _ string, col core.ColumnSpec) string {
			return d.FieldDefinition(col, opts.AutoInc, col.Name != "", false)
		}))
	cmd.AddCommand(newDDLColumnCommand(opts, "add <table>", "Generate ADD COLUMN statements", cobra.ExactArgs(1),
		func(d database.Dialect, table string, col core.ColumnSpec) string {
			return d.AddColumnStatement(table, col, opts.AutoInc)
		}))
	cmd.AddCommand(newDDLColumnCommand(opts, "drop <table>", "Generate DROP COLUMN statements", cobra.ExactArgs(1),
		func(d database.Dialect, table string, col core.ColumnSpec) string {
			return d.DropColumnStatement(table, col)
		}))
	cmd.AddCommand(newDDLColumnCommand(opts, "modify <table>", "Generate statements changing a column's type", cobra.ExactArgs(1),
		func(d database.Dialect, table string, col core.ColumnSpec) string {
			return d.ModifyColumnStatement(table, col, opts.AutoInc)
		}))
	cmd.AddCommand(newDDLDropTableCommand())

	return cmd
}

func newDDLColumnCommand(opts *DDLOptions, use, short string, args cobra.PositionalArgs,
	build func(d database.Dialect, table string, col core.ColumnSpec) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			d, err := cmdCtx.Dialect()
			if err != nil {
				return err
			}

			cols, err := opts.columns()
			if err != nil {
				return err
			}

			var table string
			if len(args) > 0 {
				table = args[0]
			}

			stmts := make([]string, len(cols))
			for i, col := range cols {
				stmts[i] = build(d, table, col)
			}
			sep := ";\n"
			if cmd.Name() == "field" {
				sep = "\n"
			}
			return cmdCtx.Renderer.Statement(strings.Join(stmts, sep))
		},
	}
}

func newDDLDropTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drop-table <table>",
		Short: "Generate a drop-if-exists statement for a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			d, err := cmdCtx.Dialect()
			if err != nil {
				return err
			}
			return cmdCtx.Renderer.Statement(d.DropTableIfExistsStatement(args[0]))
		},
	}
}

// columns returns the columns named by the options: the --columns file when
// set, the single flag-described column otherwise.
func (o *DDLOptions) columns() ([]core.ColumnSpec, error) {
	if o.Columns != "" {
		return loadColumns(o.Columns)
	}

	if o.Type == "" {
		return nil, fmt.Errorf("either --type or --columns is required")
	}
	vt, ok := core.ParseValueType(o.Type)
	if !ok {
		return nil, &core.UnknownValueTypeError{Name: o.Type}
	}
	return []core.ColumnSpec{{
		Name:      o.Name,
		Type:      vt,
		Length:    o.Length,
		Precision: o.Precision,
	}}, nil
}

func loadColumns(path string) ([]core.ColumnSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided CLI input
	if err != nil {
		return nil, fmt.Errorf("failed to read columns file: %w", err)
	}

	var f columnFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse columns file %s: %w", path, err)
	}
	if len(f.Columns) == 0 {
		return nil, fmt.Errorf("columns file %s defines no columns", path)
	}
	return f.Columns, nil
}
