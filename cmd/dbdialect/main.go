// Package main provides the dbdialect CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/dbdialect/internal/cli"

	// Register dialects via init()
	_ "github.com/leapstack-labs/dbdialect/pkg/databases/dm"

	// database/sql drivers: "dm" is the default for native targets,
	// the others are selectable with target.driver
	_ "gitee.com/chunanyong/dm"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
