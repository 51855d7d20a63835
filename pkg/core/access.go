package core

import (
	"fmt"
	"strings"
)

// AccessMode is the way a host reaches a database.
type AccessMode int

// Access modes a dialect may support.
const (
	// AccessNative connects through the vendor driver.
	AccessNative AccessMode = iota
	// AccessODBC connects through an ODBC bridge.
	AccessODBC
	// AccessOCI connects through the Oracle call interface.
	AccessOCI
	// AccessPlugin delegates connection handling to a host plugin.
	AccessPlugin
	// AccessJNDI looks the connection up from a named, host-managed data source.
	AccessJNDI
)

// UnknownPort is returned when an access mode has no default port.
const UnknownPort = -1

// String returns the lowercase name of the access mode.
func (m AccessMode) String() string {
	switch m {
	case AccessNative:
		return "native"
	case AccessODBC:
		return "odbc"
	case AccessOCI:
		return "oci"
	case AccessPlugin:
		return "plugin"
	case AccessJNDI:
		return "jndi"
	default:
		return fmt.Sprintf("access(%d)", int(m))
	}
}

// ParseAccessMode converts a name to an AccessMode. An empty name means native.
func ParseAccessMode(s string) (AccessMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "native":
		return AccessNative, nil
	case "odbc":
		return AccessODBC, nil
	case "oci":
		return AccessOCI, nil
	case "plugin":
		return AccessPlugin, nil
	case "jndi":
		return AccessJNDI, nil
	default:
		return AccessNative, fmt.Errorf("unknown access mode %q (expected native, odbc, oci, plugin or jndi)", s)
	}
}
