// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package gitini

import "fmt"

// NoSectionError is returned by lookups and mutations that reference a
// section the document does not contain.
type NoSectionError struct {
	Section string
}

func (e *NoSectionError) Error() string {
	return fmt.Sprintf("no section %q", e.Section)
}

// NoOptionError is returned by lookups that reference a key not present in
// an existing section. Option holds the normalized (lowercase) key.
type NoOptionError struct {
	Section string
	Option  string
}

func (e *NoOptionError) Error() string {
	return fmt.Sprintf("no option %q in section %q", e.Option, e.Section)
}

// FormatError is the cause of a failed parse: a line that cannot be
// classified as a section header, option, comment, or blank line, or an
// option line that appears before any section header. Line counts from 1.
// Use errors.As to retrieve it from a Parse error.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
