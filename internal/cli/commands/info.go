package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/dbdialect/pkg/core"
	"github.com/spf13/cobra"
)

// dialectInfo is the JSON payload of the info command.
type dialectInfo struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	AccessModes   []string          `json:"access_modes"`
	DefaultPort   int               `json:"default_port"`
	Driver        string            `json:"driver"`
	Libraries     []string          `json:"libraries"`
	HelpURL       string            `json:"help_url"`
	ReservedWords int               `json:"reserved_words"`
	Capabilities  core.Capabilities `json:"capabilities"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	var words bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Describe the configured dialect",
		Long: `Show the product metadata and capability flags of the configured
dialect: access modes, default port, driver, vendor libraries and the
behavioral flags hosts consult before generating SQL.`,
		Example: `  # Describe DM
  dbdialect info

  # List reserved words
  dbdialect info --reserved-words

  # As JSON
  dbdialect info --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			d, err := cmdCtx.Dialect()
			if err != nil {
				return err
			}
			r := cmdCtx.Renderer

			if words {
				reserved := d.ReservedWords()
				if r.Format() == FormatJSON {
					return r.JSON(reserved)
				}
				_, err := fmt.Fprintln(cmdCtx.Out(), strings.Join(reserved, "\n"))
				return err
			}

			mode, err := cmdCtx.Cfg.Target.AccessMode()
			if err != nil {
				return err
			}

			info := dialectInfo{
				Name:          d.Name(),
				Description:   d.Description(),
				DefaultPort:   d.DefaultPort(core.AccessNative),
				Driver:        d.DriverName(mode),
				Libraries:     d.UsedLibraries(),
				HelpURL:       d.ExtraOptionsHelpText(),
				ReservedWords: len(d.ReservedWords()),
				Capabilities:  d.Capabilities(),
			}
			for _, m := range d.AccessModes() {
				info.AccessModes = append(info.AccessModes, m.String())
			}

			return r.KeyValue(infoPairs(info), info)
		},
	}

	cmd.Flags().BoolVar(&words, "reserved-words", false, "List the dialect's reserved words")

	return cmd
}

func infoPairs(info dialectInfo) [][2]string {
	c := info.Capabilities
	b := strconv.FormatBool
	return [][2]string{
		{"name", info.Name},
		{"description", info.Description},
		{"access modes", strings.Join(info.AccessModes, ", ")},
		{"default port", strconv.Itoa(info.DefaultPort)},
		{"driver", info.Driver},
		{"libraries", strings.Join(info.Libraries, ", ")},
		{"help", info.HelpURL},
		{"reserved words", strconv.Itoa(info.ReservedWords)},
		{"auto increment", b(c.SupportsAutoInc)},
		{"options in url", b(c.SupportsOptionsInURL)},
		{"sequences", b(c.SupportsSequences)},
		{"sequence no max value", b(c.SupportsSequenceNoMaxValueOption)},
		{"synonyms", b(c.SupportsSynonyms)},
		{"schema name for table list", b(c.UseSchemaNameForTableList)},
		{"primary key append on create", b(c.RequiresCreateTablePrimaryKeyAppend)},
		{"prepared statement metadata", b(c.SupportsPreparedStatementMetadataRetrieval)},
		{"release savepoint", b(c.ReleaseSavepoint)},
		{"batch update error handling", b(c.SupportsErrorHandlingOnBatchUpdates)},
		{"repository", b(c.SupportsRepository)},
		{"lock all tables", b(c.NeedsToLockAllTables)},
		{"max columns in index", strconv.Itoa(c.MaxColumnsInIndex)},
		{"max varchar length", strconv.Itoa(c.MaxVarcharLength)},
	}
}
