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

// Package charsets downloads and parses the reference data behind the
// character set files of the shift font editor.
//
// Two upstream data sets are supported: the block list from the Unicode
// Character Database, and the Adobe Latin character sets published at
// https://adobe-type-tools.github.io/adobe-latin-charsets/ .
//
// A typical generation run downloads one Adobe charset and hands it to
// the tsgen package for rendering:
//
//	set, err := charsets.FetchCharset("adobe-latin-1", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	body, err := tsgen.Render("adobe-latin-1", set)
//	...
//
// The parsers validate the line structure of the upstream files and
// report failures as [*ParseError] with the offending line number.
package charsets
