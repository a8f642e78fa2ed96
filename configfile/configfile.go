// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package configfile reads and writes gitini documents on disk.
//
// The gitini package itself never touches the file system and never logs;
// this package supplies the file-level plumbing around it: opening and
// parsing a config file, writing one back atomically, and layering the
// multiple config locations git-style tools consult (repository-local,
// per-user, system-wide).
package configfile

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/yourbase/gitini"
	"zombiezen.com/go/log"
)

// Load parses the git-style configuration file at path.
func Load(path string) (*gitini.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load git config: %w", err)
	}
	doc, err := gitini.Parse(f)
	f.Close() // Close errors irrelevant.
	if err != nil {
		return nil, fmt.Errorf("load git config: %s: %w", path, err)
	}
	return doc, nil
}

// Save writes doc to path. The document is serialized to a temporary file in
// the destination directory and renamed into place, so a crash mid-write
// never leaves a truncated config behind. On error the temporary file is
// removed.
func Save(ctx context.Context, path string, doc *gitini.Document) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := ioutil.TempFile(dir, base+".tmp*")
	if err != nil {
		return fmt.Errorf("save git config: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		tmp.Close() // Close errors irrelevant.
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Warnf(ctx, "Leaving temporary file behind: %v", rmErr)
		}
	}()
	if err := doc.Write(tmp); err != nil {
		return fmt.Errorf("save git config: %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("save git config: %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save git config: %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save git config: %w", err)
	}
	return nil
}

// Scopes is a list of configuration documents in descending order of
// precedence: repository-local first, then the user's global file, then the
// system-wide file, in the manner of git config. Elements may be nil for
// locations that had no file.
type Scopes []*gitini.Document

// LoadScopes parses the files at the given paths into a Scopes. Missing
// files are skipped, leaving a nil entry, so callers can list optional
// locations. LoadScopes stops at the first file that fails to parse. If the
// returned error is nil, the result has one element per path.
func LoadScopes(ctx context.Context, paths ...string) (Scopes, error) {
	scopes := make(Scopes, 0, len(paths))
	for _, p := range paths {
		doc, err := Load(p)
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf(ctx, "No config file at %s, skipping", p)
			scopes = append(scopes, nil)
			continue
		}
		if err != nil {
			return scopes, err
		}
		scopes = append(scopes, doc)
	}
	return scopes, nil
}

// Get returns the value for key from the highest-precedence scope whose
// named section contains it. If no scope does, it returns the lookup error
// from the last scope, or a *gitini.NoSectionError when every scope is nil.
func (s Scopes) Get(section, key string) (gitini.Value, error) {
	err := error(&gitini.NoSectionError{Section: section})
	for _, doc := range s {
		if doc == nil {
			continue
		}
		var v gitini.Value
		v, err = doc.Get(section, key)
		if err == nil {
			return v, nil
		}
	}
	return gitini.Value{}, err
}

// Has reports whether any scope records a value for key in the named
// section.
func (s Scopes) Has(section, key string) bool {
	for _, doc := range s {
		if doc.HasOption(section, key) {
			return true
		}
	}
	return false
}

// Sections returns the union of section names across all scopes, in
// precedence order, first appearance wins.
func (s Scopes) Sections() []string {
	var names []string
	seen := make(map[string]bool)
	for _, doc := range s {
		for _, name := range doc.Sections() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
