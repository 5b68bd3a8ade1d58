// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package shell

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-env-keeper/models"
)

// Dialect selects the export statement syntax of a target shell family.
type Dialect string

const (
	DialectBash Dialect = "bash"
	DialectZsh  Dialect = "zsh"
	DialectFish Dialect = "fish"
	DialectCsh  Dialect = "csh"
)

// ParseDialect resolves a shell name to its dialect. Family aliases map to
// the dialect that shares their syntax: sh behaves like bash, tcsh like csh.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bash", "sh":
		return DialectBash, nil
	case "zsh":
		return DialectZsh, nil
	case "fish":
		return DialectFish, nil
	case "csh", "tcsh":
		return DialectCsh, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
}

// Line renders one environment assignment for the dialect. The value is
// emitted inside double quotes with every character the dialect treats as
// special escaped, so an arbitrary value round-trips into exactly one
// variable assignment and can never be executed.
func (d Dialect) Line(key, value string) (string, error) {
	quoted, err := d.quote(value)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", key, err)
	}

	switch d {
	case DialectBash, DialectZsh:
		return fmt.Sprintf("export %s=%s", key, quoted), nil
	case DialectFish:
		return fmt.Sprintf("set -gx %s %s", key, quoted), nil
	case DialectCsh:
		return fmt.Sprintf("setenv %s %s", key, quoted), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, string(d))
	}
}

// ExportLines renders the full secret set as an eval-able script, one
// assignment per line in store order, with a trailing newline.
func (d Dialect) ExportLines(secrets []models.Secret) (string, error) {
	var b strings.Builder
	for _, sec := range secrets {
		line, err := d.Line(sec.Key, sec.Value)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func (d Dialect) quote(value string) (string, error) {
	var b strings.Builder
	b.WriteByte('"')

	for _, r := range value {
		switch d {
		case DialectBash, DialectZsh:
			// Inside POSIX double quotes only \ " $ ` stay special;
			// a literal newline is preserved as-is.
			switch r {
			case '\\', '"', '$', '`':
				b.WriteByte('\\')
			}
		case DialectFish:
			// Fish double quotes recognize \\ \" and \$.
			switch r {
			case '\\', '"', '$':
				b.WriteByte('\\')
			}
		case DialectCsh:
			// csh substitutes backquoted commands even inside double
			// quotes, and neither a backquote nor a newline has a
			// reliable in-quote escape there; refuse rather than emit
			// an executable or misparsed statement.
			if r == '\n' || r == '`' {
				return "", ErrUnexportableValue
			}
			switch r {
			case '\\', '"', '$', '!':
				b.WriteByte('\\')
			}
		}
		b.WriteRune(r)
	}

	b.WriteByte('"')
	return b.String(), nil
}
