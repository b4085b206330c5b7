// Package sqlguard rejects request values that would change the shape of a
// spliced statement. It is off unless the gateway is started with SQL_GUARD.
package sqlguard

import (
	"errors"
	"fmt"
	"regexp"

	libinjection "github.com/corazawaf/libinjection-go"
)

var (
	// ErrInvalidIdentifier is returned for table, column and constraint names
	// that are not plain (optionally schema qualified) identifiers.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrRejectedValue is returned for column types, lengths and DEFAULT
	// literals that look like SQL injection.
	ErrRejectedValue = errors.New("rejected value")
)

var (
	identPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*(\.[A-Za-z_][A-Za-z0-9_$]*)?$`)
	typePattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_ ]*(\([A-Za-z0-9_ ,']*\))?( [A-Za-z ]+)?$`)
	lengthPattern = regexp.MustCompile(`^[0-9]+(\s*,\s*[0-9]+)?$`)
)

// Guard validates the text spliced into DDL and DML statements.
// A nil *Guard or a disabled one accepts everything.
type Guard struct {
	enabled bool
}

// New returns a guard; enabled=false yields a pass-through guard.
func New(enabled bool) *Guard {
	return &Guard{enabled: enabled}
}

// Enabled reports whether checks are applied.
func (g *Guard) Enabled() bool {
	return g != nil && g.enabled
}

// Identifiers checks every name; an empty name is left for the database to reject.
func (g *Guard) Identifiers(names ...string) error {
	if !g.Enabled() {
		return nil
	}
	for _, n := range names {
		if n == "" {
			continue
		}
		if !identPattern.MatchString(n) {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, n)
		}
	}
	return nil
}

// ColumnType checks a column type such as VARCHAR, INT UNSIGNED or ENUM('a','b').
func (g *Guard) ColumnType(typ string) error {
	if !g.Enabled() || typ == "" {
		return nil
	}
	if !typePattern.MatchString(typ) {
		return fmt.Errorf("%w: column type %q", ErrRejectedValue, typ)
	}
	return nil
}

// Length checks a length clause such as 255 or 10,2.
func (g *Guard) Length(length string) error {
	if !g.Enabled() || length == "" {
		return nil
	}
	if !lengthPattern.MatchString(length) {
		return fmt.Errorf("%w: length %q", ErrRejectedValue, length)
	}
	return nil
}

// DefaultValue scans a DEFAULT literal with libinjection.
func (g *Guard) DefaultValue(value string) error {
	if !g.Enabled() || value == "" {
		return nil
	}
	return g.scan("default value", value)
}

func (g *Guard) scan(what, value string) error {
	if isSQLi, fingerprint := libinjection.IsSQLi(value); isSQLi {
		return fmt.Errorf("%w: %s %q (fingerprint %s)", ErrRejectedValue, what, value, fingerprint)
	}
	return nil
}
