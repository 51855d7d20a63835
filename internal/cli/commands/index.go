package commands

import (
	"github.com/spf13/cobra"
)

// NewIndexExistsCommand creates the index-exists command.
func NewIndexExistsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index-exists <table> <column>...",
		Short: "Check whether columns of a table are indexed",
		Long: `Query the target's index catalog and report whether every named column
of the table takes part in an index. The table's schema comes from the
target configuration (--schema).`,
		Example: `  dbdialect index-exists ORDERS ID CUSTOMER_ID`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			s, cleanup, err := cmdCtx.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := s.IndexExists(cmd.Context(), cmdCtx.Cfg.Target.Schema, args[0], args[1:])
			if err != nil {
				return err
			}
			return printBool(cmdCtx, "indexed", ok)
		},
	}
}
