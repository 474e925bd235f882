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
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// blockLine matches data lines of Blocks.txt, e.g. "0000..007F; Basic Latin".
var blockLine = regexp.MustCompile(`^([0-9A-Fa-f]+)\.\.([0-9A-Fa-f]+)\s*;\s*(.*\S)\s*$`)

// ParseBlocks parses the contents of the Blocks.txt file of the Unicode
// Character Database.  Comment lines and blank lines are ignored.
func ParseBlocks(r io.Reader) (Blocks, error) {
	blocks := Blocks{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m := blockLine.FindStringSubmatch(line)
		if m == nil {
			return nil, &ParseError{
				Source: "blocks",
				Line:   lineNo,
				Err:    fmt.Errorf("unexpected line %q", line),
			}
		}
		lo, err1 := strconv.ParseUint(m[1], 16, 32)
		hi, err2 := strconv.ParseUint(m[2], 16, 32)
		if err1 != nil || err2 != nil || lo > hi || hi > unicode.MaxRune {
			return nil, &ParseError{
				Source: "blocks",
				Line:   lineNo,
				Err:    fmt.Errorf("invalid code point range %s..%s", m[1], m[2]),
			}
		}
		blocks[m[3]] = Block{Lo: rune(lo), Hi: rune(hi)}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return blocks, nil
}

// ParseCharset parses an Adobe Latin character set in the tab-separated
// format used at https://adobe-type-tools.github.io/adobe-latin-charsets/ .
// The first line contains column headers and is skipped.  The remaining
// lines must have at least four fields: the code points, the UTF-8
// rendering (which is ignored), the glyph name, and the Unicode character
// name.
//
// If a glyph name occurs more than once, the later entry replaces the
// earlier one but keeps its original position.
func ParseCharset(r io.Reader) (*Charset, error) {
	set := NewCharset()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if lineNo == 1 {
			// column headers
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		ff := strings.Split(line, "\t")
		if len(ff) < 4 {
			return nil, &ParseError{
				Source: "charset",
				Line:   lineNo,
				Err:    fmt.Errorf("expected 4 tab-separated fields, got %d", len(ff)),
			}
		}
		name := ff[2]
		if name == "" {
			return nil, &ParseError{
				Source: "charset",
				Line:   lineNo,
				Err:    errors.New("empty glyph name"),
			}
		}
		entry := Entry{Unicode: ff[0], CharName: ff[3]}
		if _, err := entry.Runes(); err != nil {
			return nil, &ParseError{
				Source: "charset",
				Line:   lineNo,
				Err:    err,
			}
		}
		set.Set(name, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}
