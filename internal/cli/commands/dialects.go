package commands

import (
	"github.com/leapstack-labs/dbdialect/pkg/database"
	"github.com/spf13/cobra"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)

			var rows [][]any
			for _, name := range database.List() {
				d, err := database.New(name, cmdCtx.Logger)
				if err != nil || d == nil {
					continue
				}
				rows = append(rows, []any{d.Name(), d.Description()})
			}
			return cmdCtx.Renderer.Table([]string{"Name", "Description"}, rows)
		},
	}
}
