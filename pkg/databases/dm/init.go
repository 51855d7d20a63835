// Package dm provides the Dameng (DM) database dialect for dbdialect.
//
// This file registers the DM dialect with the dialect registry.
// Import this package with a blank identifier to register the dialect:
//
//	import _ "github.com/leapstack-labs/dbdialect/pkg/databases/dm"
package dm

import (
	"log/slog"

	"github.com/leapstack-labs/dbdialect/pkg/database"
)

func init() {
	database.Register(Name, func(logger *slog.Logger) database.Dialect { return New(logger) })
}
