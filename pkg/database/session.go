package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/leapstack-labs/dbdialect/pkg/core"
)

// ErrNotConnected is returned by Session methods called before Connect.
var ErrNotConnected = errors.New("database connection not established")

// Session runs dialect-generated SQL over database/sql on behalf of the host.
// The dialect never manages connections itself; Session owns the *sql.DB.
type Session struct {
	DB      *sql.DB
	Dialect Dialect
	Cfg     core.TargetConfig
	Logger  *slog.Logger
}

// NewSession creates a session for an already resolved dialect.
// If logger is nil, a discard logger is used.
func NewSession(d Dialect, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{Dialect: d, Logger: logger}
}

// OpenSession resolves cfg.Type from the registry, configures the dialect
// when it is Configurable, and connects to the target.
func OpenSession(ctx context.Context, cfg core.TargetConfig, logger *slog.Logger) (*Session, error) {
	d, err := New(cfg.Type, logger)
	if err != nil {
		return nil, err
	}
	if c, ok := d.(Configurable); ok {
		if err := c.Configure(cfg); err != nil {
			return nil, err
		}
	}
	s := NewSession(d, logger)
	if err := s.Connect(ctx, cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// DataSource returns the driver name and data source name for cfg.
// An explicit DSN wins over URL assembly and is used verbatim; an explicit
// driver wins over the dialect's driver for the access mode. A built URL
// carries cfg.User and cfg.Password as userinfo.
func (s *Session) DataSource(cfg core.TargetConfig) (driver, dsn string, err error) {
	mode, err := cfg.AccessMode()
	if err != nil {
		return "", "", &ConfigurationError{Op: "access", Msg: err.Error()}
	}

	driver = cfg.Driver
	if driver == "" {
		driver = s.Dialect.DriverName(mode)
	}

	dsn = cfg.DSN
	if dsn == "" {
		dsn, err = s.Dialect.BuildURL(cfg.Host, cfg.Port, cfg.Database, mode)
		if err != nil {
			return "", "", err
		}
		dsn = withUserInfo(dsn, cfg.User, cfg.Password)
	}
	return driver, dsn, nil
}

// withUserInfo inserts escaped credentials after the scheme of a URL-style
// DSN. DSNs without "://" (ODBC data source names) are returned unchanged.
func withUserInfo(dsn, user, password string) string {
	if user == "" {
		return dsn
	}
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return dsn
	}
	info := url.User(user)
	if password != "" {
		info = url.UserPassword(user, password)
	}
	return scheme + "://" + info.String() + "@" + rest
}

// Connect opens and pings the target database.
func (s *Session) Connect(ctx context.Context, cfg core.TargetConfig) error {
	driver, dsn, err := s.DataSource(cfg)
	if err != nil {
		return err
	}

	s.Logger.Debug("connecting to database",
		slog.String("dialect", s.Dialect.Name()),
		slog.String("driver", driver),
		slog.String("host", cfg.Host),
		slog.String("user", cfg.User),
		slog.String("database", cfg.Database))

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s connection: %w", driver, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping %s: %w", driver, err)
	}

	s.DB = db
	s.Cfg = cfg
	return nil
}

// Close closes the database connection.
func (s *Session) Close() error {
	if s.DB != nil {
		s.Logger.Debug("closing database connection")
		return s.DB.Close()
	}
	return nil
}

// IsConnected returns true if the database connection is established.
func (s *Session) IsConnected() bool {
	return s.DB != nil
}

// ExecStatement executes one statement as-is.
func (s *Session) ExecStatement(ctx context.Context, stmt string) error {
	if s.DB == nil {
		return ErrNotConnected
	}
	s.Logger.Debug("executing statement", slog.String("sql", stmt))
	if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}
	return nil
}

// Exec splits script with the dialect's script parser and executes each
// statement in order, stopping at the first failure.
func (s *Session) Exec(ctx context.Context, script string) (int, error) {
	if s.DB == nil {
		return 0, ErrNotConnected
	}
	stmts := s.Dialect.ScriptParser().Split(script)
	for i, stmt := range stmts {
		if err := s.ExecStatement(ctx, stmt); err != nil {
			return i, fmt.Errorf("statement %d of %d: %w", i+1, len(stmts), err)
		}
	}
	return len(stmts), nil
}

// Query executes a SQL statement that returns rows.
func (s *Session) Query(ctx context.Context, query string) (*sql.Rows, error) {
	if s.DB == nil {
		return nil, ErrNotConnected
	}
	//nolint:rowserrcheck // rows.Err() must be checked by caller after iteration completes
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return rows, nil
}

// TableExists runs the dialect's zero-row probe; a failing probe means the
// table is absent.
func (s *Session) TableExists(ctx context.Context, table string) (bool, error) {
	return s.probe(ctx, s.Dialect.SQLTableExists(table))
}

// ColumnExists runs the dialect's zero-row column probe.
func (s *Session) ColumnExists(ctx context.Context, column, table string) (bool, error) {
	return s.probe(ctx, s.Dialect.SQLColumnExists(column, table))
}

func (s *Session) probe(ctx context.Context, query string) (bool, error) {
	if s.DB == nil {
		return false, ErrNotConnected
	}
	s.Logger.Debug("probing", slog.String("sql", query))
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return false, nil
	}
	defer func() { _ = rows.Close() }()
	_ = rows.Next()
	return rows.Err() == nil, nil
}

// SequenceExists reports whether the catalog returns a row for sequence.
func (s *Session) SequenceExists(ctx context.Context, sequence string) (bool, error) {
	if s.DB == nil {
		return false, ErrNotConnected
	}
	rows, err := s.DB.QueryContext(ctx, s.Dialect.SequenceExistsQuery(sequence))
	if err != nil {
		return false, fmt.Errorf("failed to look up sequence %s: %w", sequence, err)
	}
	defer func() { _ = rows.Close() }()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("failed to look up sequence %s: %w", sequence, err)
	}
	return found, nil
}

// IndexExists delegates to the dialect using the session connection.
func (s *Session) IndexExists(ctx context.Context, schema, table string, fields []string) (bool, error) {
	if s.DB == nil {
		return false, ErrNotConnected
	}
	return s.Dialect.IndexExists(ctx, s.DB, schema, table, fields)
}
