// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package gitini

import (
	"fmt"
	"regexp"
)

// AddSection creates an empty section with the given name at the end of the
// document. Adding a section that already exists is a no-op: a name never
// refers to more than one section.
func (d *Document) AddSection(name string) {
	if d.section(name) == nil {
		d.sections = append(d.sections, &section{name: name})
	}
}

// RemoveSection deletes the named section and every option in it, reporting
// whether it existed.
func (d *Document) RemoveSection(name string) bool {
	for i, s := range d.sections {
		if s.name == name {
			d.sections = append(d.sections[:i], d.sections[i+1:]...)
			return true
		}
	}
	return false
}

// Set replaces everything recorded for key in the named section with the
// single given value, collapsing a prior multivar to one entry. The key is
// normalized to lowercase. Set will panic if the key is empty or contains
// whitespace, quotes, brackets, or '='.
func (d *Document) Set(sectionName, key, value string) error {
	key = normalizeKey(key)
	if !isValidKey(key) {
		panic("Document.Set invalid key: " + key)
	}
	s := d.section(sectionName)
	if s == nil {
		return &NoSectionError{Section: sectionName}
	}
	if o := s.find(key); o != nil {
		o.values = []string{value}
		o.bare = false
		return nil
	}
	s.options = append(s.options, &option{key: key, values: []string{value}})
	return nil
}

// SetMultivar appends value to the values recorded for key in the named
// section: a single value becomes a two-element multivar, a new key becomes
// a single value. Earlier values keep their order. SetMultivar will panic if
// the key is invalid, like Set.
func (d *Document) SetMultivar(sectionName, key, value string) error {
	key = normalizeKey(key)
	if !isValidKey(key) {
		panic("Document.SetMultivar invalid key: " + key)
	}
	s := d.section(sectionName)
	if s == nil {
		return &NoSectionError{Section: sectionName}
	}
	s.record(key, value)
	return nil
}

// RemoveOption deletes key and every value recorded for it from the named
// section, reporting whether the key existed.
func (d *Document) RemoveOption(sectionName, key string) (bool, error) {
	s := d.section(sectionName)
	if s == nil {
		return false, &NoSectionError{Section: sectionName}
	}
	return s.remove(normalizeKey(key)), nil
}

// RemoveOptionRegexp deletes every value of key whose text contains a match
// of expr, an RE2 regular expression matched without anchoring. If no value
// matches, it reports false and changes nothing. Removing all values removes
// the key; leaving exactly one value collapses the option back to a single
// value.
func (d *Document) RemoveOptionRegexp(sectionName, key, expr string) (bool, error) {
	s := d.section(sectionName)
	if s == nil {
		return false, &NoSectionError{Section: sectionName}
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return false, fmt.Errorf("remove option %q: %w", key, err)
	}
	key = normalizeKey(key)
	o := s.find(key)
	if o == nil {
		return false, nil
	}
	values := o.values
	if o.bare {
		values = []string{"true"}
	}
	kept := values[:0:0]
	for _, v := range values {
		if !re.MatchString(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(values) {
		return false, nil
	}
	if len(kept) == 0 {
		s.remove(key)
		return true, nil
	}
	o.values = kept
	o.bare = false
	return true, nil
}

func (s *section) remove(key string) bool {
	for i, o := range s.options {
		if o.key == key {
			s.options = append(s.options[:i], s.options[i+1:]...)
			return true
		}
	}
	return false
}
