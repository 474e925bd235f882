// github.com/shift-editor/charsets - character set data for the shift font editor
// Copyright (C) 2026  The shift-editor authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package charsets

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"
	"seehuhn.de/go/postscript/type1/names"
)

// Verify checks the entries of the character set for internal
// consistency.  The first problem found is returned as an error.
//
// Two checks are performed for every entry: if the glyph name has a
// meaning under the Adobe Glyph List rules, the code points must match
// that meaning, and for single code points with a non-empty character
// name, the character name must be the one assigned by Unicode.
func (c *Charset) Verify() error {
	for _, name := range c.names {
		entry := c.entries[name]
		rr, err := entry.Runes()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		if agl := names.ToUnicode(name, ""); len(agl) > 0 && string(agl) != string(rr) {
			return fmt.Errorf("%s: code points %q, but glyph name implies %q",
				name, string(rr), string(agl))
		}

		if len(rr) == 1 && entry.CharName != "" {
			want := runenames.Name(rr[0])
			if entry.CharName != want {
				return fmt.Errorf("%s: character name %q, expected %q",
					name, entry.CharName, want)
			}
		}
	}
	return nil
}
