// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package gitini

import "io"

// MarshalText serializes the document in git config format. Output is
// canonical: section headers in document order, options in first-appearance
// order, one line per multivar value, and every option line indented with
// exactly one tab no matter how the source was indented. The result is
// UTF-8, suitable for byte-oriented destinations.
func (d *Document) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	var buf []byte
	for _, s := range d.sections {
		buf = append(buf, '[')
		buf = append(buf, s.name...)
		buf = append(buf, "]\n"...)
		for _, o := range s.options {
			if o.bare {
				buf = append(buf, '\t')
				buf = append(buf, o.key...)
				buf = append(buf, '\n')
				continue
			}
			for _, v := range o.values {
				buf = append(buf, '\t')
				buf = append(buf, o.key...)
				buf = append(buf, " = "...)
				buf = append(buf, v...)
				buf = append(buf, '\n')
			}
		}
	}
	return buf, nil
}

// Write serializes the whole document to w as MarshalText renders it.
func (d *Document) Write(w io.Writer) error {
	text, err := d.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}

// String renders the document as Write would emit it.
func (d *Document) String() string {
	text, _ := d.MarshalText()
	return string(text)
}
