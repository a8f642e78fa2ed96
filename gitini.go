// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package gitini

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// A Document is a git-style configuration file held in memory: an ordered
// list of sections, each an ordered list of options. The zero value is an
// empty document. Documents can be read by multiple concurrent goroutines,
// but mutation requires external synchronization.
type Document struct {
	sections []*section
}

// A section's name is the text inside the header brackets, kept verbatim:
// "core" for [core], `remote "origin"` for [remote "origin"].
type section struct {
	name    string
	options []*option
}

// An option holds every value recorded for one normalized key, in the order
// the values were recorded. bare marks a valueless key (e.g. a line reading
// just "filemode"); it is cleared as soon as a value is assigned.
type option struct {
	key    string
	values []string
	bare   bool
}

// Parse reads a git-style configuration file from r into a new Document.
//
// Section headers may be indented arbitrarily. Option lines may be indented
// with any mix of tabs and spaces; the indentation is not part of the key
// and is not retained (Write always emits a tab). Values are read literally,
// with no unescaping.
//
// On error, no document is returned: a *FormatError (wrapped) aborts the
// whole parse.
func Parse(r io.Reader) (*Document, error) {
	d := new(Document)
	if err := d.Read(r); err != nil {
		return nil, err
	}
	return d, nil
}

// Read fully consumes r, recording its sections into d. Sections already
// present in d are reused, so reading several files merges them the way
// duplicate headers merge within one file. If Read returns an error, d may
// hold a partial read and should be discarded.
func (d *Document) Read(r io.Reader) error {
	s := bufio.NewScanner(r)
	var curr *section
	lineno := 1
	for ; s.Scan(); lineno++ {
		line := strings.TrimSpace(s.Text())
		switch {
		case line == "" || line[0] == '#' || line[0] == ';':
			// Blank lines and comments are not modeled.
		case line[0] == '[':
			name, ok := parseHeader(line)
			if !ok {
				return parseError(lineno, "malformed section header %q", line)
			}
			if curr = d.section(name); curr == nil {
				curr = &section{name: name}
				d.sections = append(d.sections, curr)
			}
		default:
			key, value, bare, ok := parseOption(line)
			if !ok {
				return parseError(lineno, "cannot parse %q", line)
			}
			if curr == nil {
				return parseError(lineno, "option %q before any section header", key)
			}
			if bare {
				curr.recordBare(key)
			} else {
				curr.record(key, value)
			}
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("parse git config: line %d: %w", lineno, err)
	}
	return nil
}

func parseError(lineno int, format string, args ...interface{}) error {
	return fmt.Errorf("parse git config: %w", &FormatError{
		Line: lineno,
		Msg:  fmt.Sprintf(format, args...),
	})
}

// parseHeader extracts the section name from a trimmed header line, which is
// known to start with '['. The name is the bracket contents with surrounding
// whitespace removed; a quoted subsection stays verbatim.
func parseHeader(line string) (name string, ok bool) {
	if !strings.HasSuffix(line, "]") {
		return "", false
	}
	name = strings.TrimSpace(line[1 : len(line)-1])
	if name == "" || strings.ContainsAny(name, "[]") {
		return "", false
	}
	return name, true
}

// parseOption splits a trimmed option line into its normalized key and
// literal value. A line with no '=' is a bare key.
func parseOption(line string) (key, value string, bare, ok bool) {
	i := strings.IndexByte(line, '=')
	if i < 0 {
		key = normalizeKey(line)
		return key, "", true, isValidKey(key)
	}
	key = normalizeKey(strings.TrimSpace(line[:i]))
	value = strings.TrimSpace(line[i+1:])
	return key, value, false, isValidKey(key)
}

// normalizeKey is applied to every key before storage or lookup. Keys are
// case-insensitive; the lowercase form is canonical.
func normalizeKey(key string) string {
	return strings.ToLower(key)
}

func isValidKey(key string) bool {
	if key == "" {
		return false
	}
	return !strings.ContainsAny(key, "=\"[] \t")
}

func (d *Document) section(name string) *section {
	for _, s := range d.sections {
		if s.name == name {
			return s
		}
	}
	return nil
}

func (s *section) find(key string) *option {
	for _, o := range s.options {
		if o.key == key {
			return o
		}
	}
	return nil
}

// record appends a value for key, promoting an existing single value to a
// multivar. A previously bare key keeps "true" as its first value.
func (s *section) record(key, value string) {
	o := s.find(key)
	if o == nil {
		s.options = append(s.options, &option{key: key, values: []string{value}})
		return
	}
	if o.bare {
		o.values = []string{"true"}
		o.bare = false
	}
	o.values = append(o.values, value)
}

func (s *section) recordBare(key string) {
	if o := s.find(key); o != nil {
		// The key already has a value; a bare repeat reads as "true".
		s.record(key, "true")
		return
	}
	s.options = append(s.options, &option{key: key, bare: true})
}

// Get returns the value recorded for key in the named section. The key is
// looked up case-insensitively. A bare key reads as the single value "true".
func (d *Document) Get(sectionName, key string) (Value, error) {
	if d == nil {
		return Value{}, &NoSectionError{Section: sectionName}
	}
	s := d.section(sectionName)
	if s == nil {
		return Value{}, &NoSectionError{Section: sectionName}
	}
	key = normalizeKey(key)
	o := s.find(key)
	if o == nil {
		return Value{}, &NoOptionError{Section: sectionName, Option: key}
	}
	if o.bare {
		return Value{all: []string{"true"}}, nil
	}
	return Value{all: append([]string(nil), o.values...)}, nil
}

// Sections returns the section names in document order.
func (d *Document) Sections() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		names = append(names, s.name)
	}
	return names
}

// HasSection reports whether the named section exists.
func (d *Document) HasSection(name string) bool {
	return d != nil && d.section(name) != nil
}

// Options returns the option keys of the named section in first-appearance
// order.
func (d *Document) Options(sectionName string) ([]string, error) {
	if d == nil {
		return nil, &NoSectionError{Section: sectionName}
	}
	s := d.section(sectionName)
	if s == nil {
		return nil, &NoSectionError{Section: sectionName}
	}
	keys := make([]string, 0, len(s.options))
	for _, o := range s.options {
		keys = append(keys, o.key)
	}
	return keys, nil
}

// HasOption reports whether the named section exists and contains key.
func (d *Document) HasOption(sectionName, key string) bool {
	if d == nil {
		return false
	}
	s := d.section(sectionName)
	return s != nil && s.find(normalizeKey(key)) != nil
}

// UnmarshalText parses data, replacing any sections in d.
func (d *Document) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

// A Value is the result of a lookup: the single string recorded for an
// option, or an ordered sequence of strings when the option is a multivar.
type Value struct {
	all []string
}

// Multivar reports whether the option carried more than one value.
func (v Value) Multivar() bool {
	return len(v.all) > 1
}

// String returns the recorded value. For a multivar it returns the first
// recorded value.
func (v Value) String() string {
	if len(v.all) == 0 {
		return ""
	}
	return v.all[0]
}

// Strings returns every recorded value in order. For a single-value option
// it returns a one-element slice.
func (v Value) Strings() []string {
	return append([]string(nil), v.all...)
}
