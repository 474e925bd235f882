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
	"strings"
	"testing"

	"github.com/shift-editor/charsets/internal/testdata"
)

func TestVerify(t *testing.T) {
	set, err := ParseCharset(bytes.NewReader(testdata.AdobeLatin1))
	if err != nil {
		t.Fatal(err)
	}
	if err := set.Verify(); err != nil {
		t.Errorf("unexpected problem: %v", err)
	}
}

func TestVerifyOK(t *testing.T) {
	set := NewCharset()
	// glyph names without a meaning under the AGL rules are not checked
	// against the code points
	set.Set("anyoldname", Entry{Unicode: "0041", CharName: "LATIN CAPITAL LETTER A"})
	set.Set("uni2E17", Entry{Unicode: "2E17", CharName: ""})
	set.Set("f_i", Entry{Unicode: "0066 0069", CharName: ""})
	if err := set.Verify(); err != nil {
		t.Errorf("unexpected problem: %v", err)
	}
}

func TestVerifyWrongCodePoint(t *testing.T) {
	set := NewCharset()
	set.Set("B", Entry{Unicode: "0043", CharName: "LATIN CAPITAL LETTER C"})
	err := set.Verify()
	if err == nil {
		t.Fatal("code point mismatch not detected")
	}
	if !strings.Contains(err.Error(), "B") {
		t.Errorf("glyph name missing from error %q", err)
	}
}

func TestVerifyWrongLigature(t *testing.T) {
	set := NewCharset()
	set.Set("f_i", Entry{Unicode: "0066 006A", CharName: ""})
	if set.Verify() == nil {
		t.Error("code point mismatch not detected")
	}
}

func TestVerifyWrongCharName(t *testing.T) {
	set := NewCharset()
	set.Set("A", Entry{Unicode: "0041", CharName: "LATIN CAPITAL LETTER B"})
	err := set.Verify()
	if err == nil {
		t.Fatal("character name mismatch not detected")
	}
	if !strings.Contains(err.Error(), "LATIN CAPITAL LETTER A") {
		t.Errorf("expected name missing from error %q", err)
	}
}

func TestVerifyBadUnicode(t *testing.T) {
	set := NewCharset()
	set.Set("bad", Entry{Unicode: "xyz", CharName: ""})
	err := set.Verify()
	if err == nil {
		t.Fatal("invalid code point not detected")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("glyph name missing from error %q", err)
	}
}
