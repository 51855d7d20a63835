package commands

import (
	"fmt"

	"github.com/leapstack-labs/dbdialect/pkg/database"
	"github.com/spf13/cobra"
)

// SequenceOptions holds options for the sequence command.
type SequenceOptions struct {
	Run bool
}

// NewSequenceCommand creates the sequence command.
func NewSequenceCommand() *cobra.Command {
	opts := &SequenceOptions{}

	cmd := &cobra.Command{
		Use:   "sequence",
		Short: "Sequence catalog and value queries",
		Long: `Print the dialect's sequence queries, or run them against the target
with --run.`,
		Example: `  # Show the lookup query
  dbdialect sequence exists sales.seq_orders

  # Advance a sequence on the target
  dbdialect sequence next seq_orders --run

  # List sequences
  dbdialect sequence list --run`,
	}

	cmd.PersistentFlags().BoolVar(&opts.Run, "run", false, "Run the query against the target")

	cmd.AddCommand(&cobra.Command{
		Use:   "exists <sequence>",
		Short: "Check whether a sequence exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if !opts.Run {
				return printQuery(cmdCtx, func(d database.Dialect) string { return d.SequenceExistsQuery(args[0]) })
			}

			s, cleanup, err := cmdCtx.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := s.SequenceExists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printBool(cmdCtx, "exists", ok)
		},
	})

	valueCommand := func(use, short string, query func(d database.Dialect, seq string) string) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <sequence>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cmdCtx := NewCommandContext(cmd)
				return runOrPrint(cmd, cmdCtx, opts.Run, func(d database.Dialect) string { return query(d, args[0]) })
			},
		}
	}
	cmd.AddCommand(valueCommand("current", "Read the current value of a sequence", database.Dialect.CurrentSequenceValueQuery))
	cmd.AddCommand(valueCommand("next", "Advance a sequence", database.Dialect.NextSequenceValueQuery))

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			return runOrPrint(cmd, cmdCtx, opts.Run, database.Dialect.ListSequencesQuery)
		},
	})

	return cmd
}

// NewProceduresCommand creates the procedures command.
func NewProceduresCommand() *cobra.Command {
	var run bool

	cmd := &cobra.Command{
		Use:   "procedures",
		Short: "List stored functions and procedures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			return runOrPrint(cmd, cmdCtx, run, database.Dialect.ListProceduresQuery)
		},
	}

	cmd.Flags().BoolVar(&run, "run", false, "Run the query against the target")

	return cmd
}

// printQuery renders the SQL a dialect builds without touching the target.
func printQuery(cmdCtx *CommandContext, build func(d database.Dialect) string) error {
	d, err := cmdCtx.Dialect()
	if err != nil {
		return err
	}
	return cmdCtx.Renderer.Statement(build(d))
}

// runOrPrint prints the query, or runs it and renders the result rows.
func runOrPrint(cmd *cobra.Command, cmdCtx *CommandContext, run bool, build func(d database.Dialect) string) error {
	if !run {
		return printQuery(cmdCtx, build)
	}

	s, cleanup, err := cmdCtx.OpenSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	rows, err := s.Query(cmd.Context(), build(s.Dialect))
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	return renderRows(cmdCtx.Renderer, rows)
}

func printBool(cmdCtx *CommandContext, key string, v bool) error {
	if cmdCtx.Renderer.Format() == FormatJSON {
		return cmdCtx.Renderer.JSON(map[string]bool{key: v})
	}
	_, err := fmt.Fprintln(cmdCtx.Out(), v)
	return err
}
