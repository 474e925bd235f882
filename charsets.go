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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
)

// Entry describes one glyph of a character set.
type Entry struct {
	// Unicode gives the code points for the glyph as space-separated,
	// upper-case hexadecimal numbers, for example "0041" or "0066 0069".
	Unicode string `json:"unicode"`

	// CharName is the Unicode character name, or "" for glyphs which do
	// not correspond to a single character.
	CharName string `json:"char_name"`
}

// Runes decodes the Unicode field of the entry.
func (e Entry) Runes() ([]rune, error) {
	fields := strings.Fields(e.Unicode)
	if len(fields) == 0 {
		return nil, errors.New("empty unicode value")
	}
	rr := make([]rune, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseUint(f, 16, 32)
		if err != nil || x > unicode.MaxRune {
			return nil, fmt.Errorf("invalid code point %q", f)
		}
		rr[i] = rune(x)
	}
	return rr, nil
}

// Charset is an ordered collection of glyph entries, indexed by glyph
// name.  The zero value is not ready for use; use [NewCharset] or
// [ParseCharset] instead.
type Charset struct {
	names   []string
	entries map[string]Entry
}

// NewCharset creates a new, empty character set.
func NewCharset() *Charset {
	return &Charset{
		entries: map[string]Entry{},
	}
}

// Len returns the number of entries in the character set.
func (c *Charset) Len() int {
	return len(c.names)
}

// Names returns the glyph names in insertion order.
// The returned slice must not be modified by the caller.
func (c *Charset) Names() []string {
	return c.names
}

// Get returns the entry for the given glyph name.
func (c *Charset) Get(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Set adds an entry to the character set.  If the glyph name is already
// present, the entry is replaced but keeps its original position.
func (c *Charset) Set(name string, e Entry) {
	if _, ok := c.entries[name]; !ok {
		c.names = append(c.names, name)
	}
	c.entries[name] = e
}

// MarshalJSON encodes the character set as a JSON object with one member
// per glyph, in insertion order.  Non-ASCII characters are not escaped.
func (c *Charset) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := encodeJSON(c.entries[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeJSON is like json.Marshal, but leaves "<", ">" and "&" alone.
func encodeJSON(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Block is a range of Unicode code points.  Both ends of the range are
// inclusive.
type Block struct {
	Lo, Hi rune
}

// Contains reports whether the code point r falls into the block.
func (b Block) Contains(r rune) bool {
	return b.Lo <= r && r <= b.Hi
}

// Blocks maps block names to code point ranges, as assigned in the
// Blocks.txt file of the Unicode Character Database.
type Blocks map[string]Block

// Find returns the name of the block containing the code point r.
func (bb Blocks) Find(r rune) (string, bool) {
	for name, b := range bb {
		if b.Contains(r) {
			return name, true
		}
	}
	return "", false
}

// Names returns all block names, ordered by the position of the block.
func (bb Blocks) Names() []string {
	names := maps.Keys(bb)
	sort.Slice(names, func(i, j int) bool {
		bi, bj := bb[names[i]], bb[names[j]]
		if bi.Lo != bj.Lo {
			return bi.Lo < bj.Lo
		}
		return names[i] < names[j]
	})
	return names
}
