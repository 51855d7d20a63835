package commands

import (
	"github.com/leapstack-labs/dbdialect/pkg/database"
	"github.com/spf13/cobra"
)

// NewProbeCommand creates the probe command.
func NewProbeCommand() *cobra.Command {
	var showSQL bool

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check whether a table or column exists on the target",
		Long: `Run the dialect's zero-row probe queries against the target. A probe
that fails is reported as absent. With --sql, print the probe instead.`,
		Example: `  dbdialect probe table ORDERS
  dbdialect probe column ORDERS AMOUNT --sql`,
	}

	cmd.PersistentFlags().BoolVar(&showSQL, "sql", false, "Print the probe query instead of running it")

	cmd.AddCommand(&cobra.Command{
		Use:   "table <table>",
		Short: "Check whether a table exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if showSQL {
				return printQuery(cmdCtx, func(d database.Dialect) string { return d.SQLTableExists(args[0]) })
			}

			s, cleanup, err := cmdCtx.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := s.TableExists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printBool(cmdCtx, "exists", ok)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "column <table> <column>",
		Short: "Check whether a column exists",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if showSQL {
				return printQuery(cmdCtx, func(d database.Dialect) string { return d.SQLColumnExists(args[1], args[0]) })
			}

			s, cleanup, err := cmdCtx.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := s.ColumnExists(cmd.Context(), args[1], args[0])
			if err != nil {
				return err
			}
			return printBool(cmdCtx, "exists", ok)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "fields <table>",
		Short: "Print the query exposing a table's columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printQuery(NewCommandContext(cmd), func(d database.Dialect) string { return d.SQLQueryFields(args[0]) })
		},
	})

	return cmd
}
