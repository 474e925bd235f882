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

// Package testdata provides excerpts of the upstream data files for use
// in tests.
package testdata

import _ "embed"

// Blocks is an excerpt of the Blocks.txt file from the Unicode 14.0.0
// Character Database.  It contains 13 block ranges.
//
//go:embed blocks.txt
var Blocks []byte

// AdobeLatin1 is an excerpt of the adobe-latin-1.txt character set.
// It contains 12 entries, all consistent with the Adobe Glyph List and
// with the Unicode character names.
//
//go:embed adobe-latin-1.txt
var AdobeLatin1 []byte
