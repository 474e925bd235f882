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

// Package tsgen renders character sets as TypeScript data files for the
// shift desktop app.
//
// The generated files consist of a fixed banner, a comment naming the
// character set, and a single exported constant holding the glyph data
// as an object literal:
//
//	// Generated file - do not edit directly
//	// adobe-latin-1 character set
//
//
//	export const ADOBE_LATIN_1 = {
//	  "space": {
//	    "unicode": "0020",
//	    "char_name": "SPACE"
//	  },
//	  ...
//	}
package tsgen

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"text/template"

	"github.com/shift-editor/charsets"
)

const banner = "// Generated file - do not edit directly"

var tsTmpl = template.Must(template.New("ts").Parse(`{{.Banner}}
// {{.Label}} character set


export const {{.Ident}} = {{.Literal}}
`))

// slots holds the values filled into the output template.
type slots struct {
	Banner  string
	Label   string
	Ident   string
	Literal string
}

var identReplacer = strings.NewReplacer(" ", "_", "-", "_")

// ConstName returns the TypeScript identifier used for a character set:
// the name is converted to upper case, and spaces and hyphens are
// replaced with underscores.
func ConstName(name string) string {
	return identReplacer.Replace(strings.ToUpper(name))
}

// Render produces the contents of the TypeScript data file for the
// given character set.  The object literal is indented by two spaces
// per level, lists the glyphs in insertion order, and contains
// non-ASCII characters in unescaped form.
func Render(name string, set *charsets.Charset) ([]byte, error) {
	// Use MarshalJSON directly: json.Marshal would re-escape "<", ">"
	// and "&" in the output.
	compact, err := set.MarshalJSON()
	if err != nil {
		return nil, err
	}
	pretty := &bytes.Buffer{}
	err = json.Indent(pretty, compact, "", "  ")
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	err = tsTmpl.Execute(buf, &slots{
		Banner:  banner,
		Label:   name,
		Ident:   ConstName(name),
		Literal: pretty.String(),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write stores a rendered file at the given path.
func Write(fname string, body []byte) error {
	return os.WriteFile(fname, body, 0o644)
}
