package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	err := &ConfigurationError{Op: "url", Msg: "database name must be specified"}
	assert.Equal(t, "url: database name must be specified", err.Error())
	assert.Equal(t, "bare", (&ConfigurationError{Msg: "bare"}).Error())

	wrapped := fmt.Errorf("connect: %w", err)
	assert.True(t, IsConfigurationError(wrapped))
	assert.False(t, IsQueryError(wrapped))
}

func TestQueryError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &QueryError{Table: "APP.ORDERS", Msg: "unable to determine if indexes exist", Err: cause}

	assert.Equal(t, "unable to determine if indexes exist on table [APP.ORDERS]: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsQueryError(fmt.Errorf("outer: %w", err)))
	assert.False(t, IsConfigurationError(err))

	assert.Equal(t, "catalog query failed on table [T]", (&QueryError{Table: "T"}).Error())
}
