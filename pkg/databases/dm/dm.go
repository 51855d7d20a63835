package dm

import (
	"log/slog"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/leapstack-labs/dbdialect/pkg/core"
	"github.com/leapstack-labs/dbdialect/pkg/database"
)

const (
	// Name is the product identifier the dialect is registered under.
	Name = "dm"

	// DefaultPort is the port a DM server listens on out of the box.
	DefaultPort = 5236

	// StrictNumber38Attribute is the attribute key persisting the strict
	// NUMBER(38) interpretation flag.
	StrictNumber38Attribute = "STRICT_NUMBER_38_INTERPRETATION"

	driverName     = "dm"
	odbcDriverName = "odbc"

	helpURL = "https://eco.dameng.com/document/dm/zh-cn/pm/"
)

var usedLibraries = []string{
	"Dm7JdbcDriver15.jar",
	"Dm7JdbcDriver16.jar",
	"Dm7JdbcDriver17.jar",
	"Dm7JdbcDriver18.jar",
}

// Dialect implements database.Dialect for DM.
//
// All SQL builders are pure. The only state is the strict NUMBER(38) flag,
// which callers mutating it concurrently with reads must synchronize.
type Dialect struct {
	logger *slog.Logger
	strict bool
}

// New creates a new DM dialect instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Dialect {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dialect{logger: logger}
}

// Name returns the product identifier.
func (d *Dialect) Name() string {
	return Name
}

// Description returns the product name.
func (d *Dialect) Description() string {
	return "DM (Dameng) Database"
}

// StrictBigNumberInterpretation reports whether NUMBER(38) columns are read
// strictly as big numbers.
func (d *Dialect) StrictBigNumberInterpretation() bool {
	return d.strict
}

// SetStrictBigNumberInterpretation sets the strict NUMBER(38) flag.
func (d *Dialect) SetStrictBigNumberInterpretation(strict bool) {
	d.strict = strict
}

// Attributes renders the dialect settings into the host's attribute bag.
func (d *Dialect) Attributes() map[string]string {
	v := "N"
	if d.strict {
		v = "Y"
	}
	return map[string]string{StrictNumber38Attribute: v}
}

// ApplyAttributes reads the dialect settings from the host's attribute bag.
// Keys match case-insensitively, since env and yaml loaders may lowercase
// them. Missing keys leave the current value untouched.
func (d *Dialect) ApplyAttributes(attrs map[string]string) {
	if v, ok := attrs[StrictNumber38Attribute]; ok {
		d.strict = strings.EqualFold(v, "Y")
		return
	}
	for k, v := range attrs {
		if strings.EqualFold(k, StrictNumber38Attribute) {
			d.strict = strings.EqualFold(v, "Y")
			return
		}
	}
}

// Params holds DM-specific typed settings.
// Parsed from core.TargetConfig.Params using mapstructure.
type Params struct {
	StrictNumber38Interpretation *bool `mapstructure:"strict_number_38_interpretation"`
}

// ApplyParams decodes typed params onto the dialect.
func (d *Dialect) ApplyParams(params map[string]any) error {
	if len(params) == 0 {
		return nil
	}

	var p Params
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return &database.ConfigurationError{Op: "params", Msg: err.Error()}
	}

	if p.StrictNumber38Interpretation != nil {
		d.strict = *p.StrictNumber38Interpretation
	}
	return nil
}

// Configure applies attribute and param settings from a target, params last.
func (d *Dialect) Configure(cfg core.TargetConfig) error {
	d.ApplyAttributes(cfg.Options)
	return d.ApplyParams(cfg.Params)
}

// UsedLibraries lists the vendor driver artifacts.
func (d *Dialect) UsedLibraries() []string {
	return append([]string(nil), usedLibraries...)
}

// ExtraOptionsHelpText returns the vendor manual URL.
func (d *Dialect) ExtraOptionsHelpText() string {
	return helpURL
}

// ScriptParser returns a parser where quotes are escaped by doubling only.
func (d *Dialect) ScriptParser() *database.ScriptParser {
	return database.NewScriptParser(false)
}

// Capabilities returns the static behavioral flags of DM.
func (d *Dialect) Capabilities() core.Capabilities {
	return core.Capabilities{
		SupportsAutoInc:                  true,
		SupportsOptionsInURL:             false,
		SupportsSequences:                true,
		SupportsSequenceNoMaxValueOption: true,
		SupportsSynonyms:                 true,

		UseSchemaNameForTableList:           true,
		RequiresCreateTablePrimaryKeyAppend: true,
		ReleaseSavepoint:                    false,
		SupportsErrorHandlingOnBatchUpdates: false,
		SupportsRepository:                  true,
		NeedsToLockAllTables:                false,

		SupportsPreparedStatementMetadataRetrieval: false,

		MaxColumnsInIndex: maxColumnsInIndex,
		MaxVarcharLength:  maxVarcharLength,
	}
}

// Ensure Dialect implements the database interfaces
var (
	_ database.Dialect      = (*Dialect)(nil)
	_ database.Configurable = (*Dialect)(nil)
)
