package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// ExecOptions holds options for the exec command.
type ExecOptions struct {
	File   string
	DryRun bool
}

// NewExecCommand creates the exec command.
func NewExecCommand() *cobra.Command {
	opts := &ExecOptions{}

	cmd := &cobra.Command{
		Use:   "exec",
		Short: "Execute a SQL script against the target",
		Long: `Split a SQL script with the dialect's script parser and execute the
statements in order, stopping at the first failure.

Reads the script from --file, or from stdin when --file is "-".`,
		Example: `  # Preview the statements
  dbdialect exec --file migrate.sql --dry-run

  # Execute
  dbdialect exec --file migrate.sql`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExec(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "SQL script to execute (- for stdin)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the statements without executing them")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runExec(cmd *cobra.Command, opts *ExecOptions) error {
	script, err := readScript(cmd.InOrStdin(), opts.File)
	if err != nil {
		return err
	}

	cmdCtx := NewCommandContext(cmd)

	if opts.DryRun {
		d, err := cmdCtx.Dialect()
		if err != nil {
			return err
		}
		stmts := d.ScriptParser().Split(script)
		if cmdCtx.Renderer.Format() == FormatJSON {
			return cmdCtx.Renderer.JSON(stmts)
		}
		if len(stmts) == 0 {
			_, err := fmt.Fprintln(cmdCtx.Out(), "(no statements)")
			return err
		}
		return cmdCtx.Renderer.Statement(strings.Join(stmts, ";\n") + ";")
	}

	s, cleanup, err := cmdCtx.OpenSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	n, err := s.Exec(cmd.Context(), script)
	if err != nil {
		return err
	}

	if cmdCtx.Renderer.Format() == FormatJSON {
		return cmdCtx.Renderer.JSON(map[string]int{"executed": n})
	}
	_, err = fmt.Fprintf(cmdCtx.Out(), "executed %d statements\n", n)
	return err
}

func readScript(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path) //nolint:gosec // path is user-provided CLI input
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	return string(b), nil
}
