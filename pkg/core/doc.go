// Package core defines the shared language of the dbdialect system.
//
// This package contains:
//   - Column value objects handed to dialects (ColumnSpec, ValueType)
//   - Connection vocabulary (AccessMode, TargetConfig)
//   - Static dialect facts (Capabilities)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
