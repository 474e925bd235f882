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

import "strconv"

// ParseError indicates that an upstream data file could not be parsed.
type ParseError struct {
	// Source identifies the data being parsed, for example "blocks" or
	// "charset".
	Source string

	// Line is the 1-based line number of the offending line, or 0 if the
	// error cannot be attributed to a single line.
	Line int

	Err error
}

func (err *ParseError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (line " + strconv.Itoa(err.Line) + ")"
	}
	return "malformed " + err.Source + " data" + middle + tail
}

func (err *ParseError) Unwrap() error {
	return err.Err
}
