package commands

import (
	"github.com/spf13/cobra"
)

// NewLockCommand creates the lock command.
func NewLockCommand() *cobra.Command {
	var unlock bool

	cmd := &cobra.Command{
		Use:   "lock <table>...",
		Short: "Generate table lock statements",
		Long: `Generate the statements locking the given tables for the duration of a
transaction. With --unlock, generate the matching unlock statement; dialects
that release locks on commit return an empty statement.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			d, err := cmdCtx.Dialect()
			if err != nil {
				return err
			}

			if unlock {
				return cmdCtx.Renderer.Statement(d.UnlockTablesStatement(args))
			}
			return cmdCtx.Renderer.Statement(d.LockTablesStatement(args))
		},
	}

	cmd.Flags().BoolVar(&unlock, "unlock", false, "Generate the unlock statement instead")

	return cmd
}
