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

// Package coverage checks which entries of a character set a font can
// display.
package coverage

import (
	"fmt"

	"seehuhn.de/go/sfnt"

	"github.com/shift-editor/charsets"
)

// Report describes how well a font covers a character set.
type Report struct {
	// Covered lists the glyph names the font can display, in charset
	// order.
	Covered []string

	// Missing lists the glyph names the font cannot display, in charset
	// order.
	Missing []string
}

// Percent returns the fraction of covered entries, in percent.
// For an empty character set, 100 is returned.
func (r *Report) Percent() float64 {
	total := len(r.Covered) + len(r.Missing)
	if total == 0 {
		return 100
	}
	return 100 * float64(len(r.Covered)) / float64(total)
}

// Check determines which entries of the character set the font covers.
// An entry counts as covered, if the font maps every code point of the
// entry to a glyph.
func Check(font *sfnt.Font, set *charsets.Charset) (*Report, error) {
	lookup, err := font.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, name := range set.Names() {
		entry, _ := set.Get(name)
		rr, err := entry.Runes()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		covered := true
		for _, r := range rr {
			if lookup.Lookup(r) == 0 { // glyph 0 is .notdef
				covered = false
				break
			}
		}
		if covered {
			report.Covered = append(report.Covered, name)
		} else {
			report.Missing = append(report.Missing, name)
		}
	}
	return report, nil
}
