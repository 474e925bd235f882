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

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shift-editor/charsets"
	"github.com/shift-editor/charsets/internal/buildinfo"
	"github.com/shift-editor/charsets/tsgen"
)

var (
	charsetArg = flag.String("c", "adobe-latin-1", "charset to download")
	dirArg     = flag.String("d", filepath.Join("apps", "desktop", "data"),
		"output directory")
	urlArg   = flag.String("url", charsets.DefaultBaseURL, "base URL for downloads")
	checkArg = flag.Bool("check", false, "check the downloaded data for consistency")
	quietArg = flag.Bool("q", false, "suppress progress messages")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "charsets-gen — generate TypeScript character set files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("charsets-gen"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  charsets-gen [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  charsets-gen\n")
		fmt.Fprintf(os.Stderr, "  charsets-gen -check -c adobe-latin-2 -d /tmp\n")
	}
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	id := *charsetArg
	opt := &charsets.Config{
		BaseURL: *urlArg,
	}

	if !*quietArg {
		fmt.Println("fetching", *urlArg+id+".txt", "...")
	}
	set, err := charsets.FetchCharset(id, opt)
	if err != nil {
		return err
	}
	if !*quietArg {
		fmt.Printf("%d glyphs\n", set.Len())
	}

	if *checkArg {
		err := set.Verify()
		if err != nil {
			return err
		}
	}

	body, err := tsgen.Render(id, set)
	if err != nil {
		return err
	}

	err = os.MkdirAll(*dirArg, 0o755)
	if err != nil {
		return err
	}
	fname := filepath.Join(*dirArg, id+".ts")
	err = tsgen.Write(fname, body)
	if err != nil {
		return err
	}
	if !*quietArg {
		fmt.Println("wrote", fname)
	}
	return nil
}
