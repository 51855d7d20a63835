package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewQuoteCommand creates the quote command.
func NewQuoteCommand() *cobra.Command {
	var ident bool

	cmd := &cobra.Command{
		Use:   "quote <value>",
		Short: "Quote a string literal or identifier",
		Long: `Render a value as a string literal of the configured dialect, or with
--ident as a [schema.]table identifier quoted where the dialect requires it.`,
		Example: `  dbdialect quote "it's"
  dbdialect quote --ident sales.user`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			d, err := cmdCtx.Dialect()
			if err != nil {
				return err
			}

			var out string
			if ident {
				schema, table, ok := strings.Cut(args[0], ".")
				if !ok {
					schema, table = "", args[0]
				}
				out = d.QuotedSchemaTable(schema, table)
			} else {
				out = d.QuoteString(args[0])
			}

			if cmdCtx.Renderer.Format() == FormatJSON {
				return cmdCtx.Renderer.JSON(map[string]string{"input": args[0], "quoted": out})
			}
			_, err = fmt.Fprintln(cmdCtx.Out(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&ident, "ident", false, "Quote as a [schema.]table identifier")

	return cmd
}
