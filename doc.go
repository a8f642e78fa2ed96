// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package gitini provides a parser and serializer for git-style configuration
files, the format used by .git/config. See
https://git-scm.com/docs/git-config#_configuration_file.

This package is specifically designed for read-modify-write scenarios:
parsing a file, changing a handful of options, and writing it back without
disturbing the rest of the file.

Syntax

A configuration file is Unicode text encoded in UTF-8. It consists of
sections, each opened by writing the section's name in square brackets on its
own line. A section name may carry a subsection in double quotes:

	[core]
	[remote "origin"]

Every line after a header and before the next header is an option line in
that section. An option is a key and value separated by an equals sign ('='),
or a bare key, which reads as the boolean "true":

	key = value
	key

Option lines are conventionally indented with a single tab, but any mix of
leading tabs and spaces is accepted on input. Output is canonical: Write
always indents option lines with exactly one tab, whatever the input used.

Keys are case-insensitive. They are lowercased when recorded and the
lowercase form is what Write emits. Values are read literally: whitespace is
trimmed from the edges, but embedded quotes, backslashes, and escape
sequences are kept exactly as written, with no unescaping.

If the first non-blank character of a line is a hash ('#') or semicolon
(';'), the line is a comment. Comments and blank lines are discarded during
parsing and do not reappear on output.

Multivars

A key assigned more than once in the same section is a multivar: the option
holds every assigned value in order, and Write emits one line per value.
Whether a lookup produced a single value or a multivar is visible on the
returned Value. An option collapses back to a single value when removals
leave exactly one.
*/
package gitini
