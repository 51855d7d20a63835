package core

// Capabilities holds the static facts a host asks a dialect about before
// adapting generic behavior. This is pure data.
type Capabilities struct {
	SupportsAutoInc                            bool `json:"supports_auto_inc"`
	SupportsOptionsInURL                       bool `json:"supports_options_in_url"`
	SupportsSequences                          bool `json:"supports_sequences"`
	SupportsSequenceNoMaxValueOption           bool `json:"supports_sequence_no_max_value_option"`
	SupportsSynonyms                           bool `json:"supports_synonyms"`
	UseSchemaNameForTableList                  bool `json:"use_schema_name_for_table_list"`
	RequiresCreateTablePrimaryKeyAppend        bool `json:"requires_create_table_primary_key_append"`
	SupportsPreparedStatementMetadataRetrieval bool `json:"supports_prepared_statement_metadata_retrieval"`
	ReleaseSavepoint                           bool `json:"release_savepoint"`
	SupportsErrorHandlingOnBatchUpdates        bool `json:"supports_error_handling_on_batch_updates"`
	SupportsRepository                         bool `json:"supports_repository"`
	NeedsToLockAllTables                       bool `json:"needs_to_lock_all_tables"`

	// MaxColumnsInIndex limits the columns of one index; <= 0 means no known limit.
	MaxColumnsInIndex int `json:"max_columns_in_index"`
	MaxVarcharLength  int `json:"max_varchar_length"`
}
