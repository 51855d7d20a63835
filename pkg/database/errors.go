package database

import (
	"errors"
	"fmt"
)

// ConfigurationError is returned for invalid connection parameters.
// It is always raised before any I/O.
type ConfigurationError struct {
	Op  string
	Msg string
}

func (e *ConfigurationError) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// QueryError is returned when a catalog probe against a live connection fails.
type QueryError struct {
	Table string
	Msg   string
	Err   error
}

func (e *QueryError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "catalog query failed"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s on table [%s]", msg, e.Table)
	}
	return fmt.Sprintf("%s on table [%s]: %v", msg, e.Table, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err is or wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsQueryError reports whether err is or wraps a *QueryError.
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}
