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
	"bytes"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"
	"seehuhn.de/go/sfnt"

	"github.com/shift-editor/charsets"
	"github.com/shift-editor/charsets/coverage"
	"github.com/shift-editor/charsets/internal/buildinfo"
	"github.com/shift-editor/charsets/internal/profile"
)

var (
	charsetArg = flag.String("c", "adobe-latin-1", "charset to check against")
	urlArg     = flag.String("url", charsets.DefaultBaseURL, "base URL for downloads")
	blocksArg  = flag.String("blocks-url", charsets.DefaultBlocksURL,
		"URL of the Unicode block list")
	missingArg = flag.Bool("missing", false,
		"list missing glyphs, grouped by Unicode block")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "charsets-coverage — check font coverage of a character set\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("charsets-coverage"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  charsets-coverage [options] <font.ttf>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font.ttf   one or more TrueType or OpenType font files\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  charsets-coverage MyFont.ttf\n")
		fmt.Fprintf(os.Stderr, "  charsets-coverage -missing -c adobe-latin-3 MyFont.otf\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	opt := &charsets.Config{
		BaseURL:   *urlArg,
		BlocksURL: *blocksArg,
	}
	set, err := charsets.FetchCharset(*charsetArg, opt)
	if err != nil {
		return err
	}

	var blocks charsets.Blocks
	if *missingArg {
		blocks, err = charsets.FetchBlocks(opt)
		if err != nil {
			return err
		}
	}

	for _, fname := range flag.Args() {
		err := checkFont(fname, set, blocks)
		if err != nil {
			return err
		}
	}
	return nil
}

func checkFont(fname string, set *charsets.Charset, blocks charsets.Blocks) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	report, err := coverage.Check(font, set)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s): %d of %d glyphs (%.1f%%)\n",
		fname, font.PostScriptName(),
		len(report.Covered), set.Len(), report.Percent())

	if blocks != nil && len(report.Missing) > 0 {
		printMissing(set, report.Missing, blocks)
	}
	return nil
}

func printMissing(set *charsets.Charset, missing []string, blocks charsets.Blocks) {
	byBlock := make(map[string][]string)
	for _, name := range missing {
		entry, _ := set.Get(name)
		rr, _ := entry.Runes() // already validated by coverage.Check

		blockName := "No_Block"
		if len(rr) > 0 {
			if b, ok := blocks.Find(rr[0]); ok {
				blockName = b
			}
		}
		byBlock[blockName] = append(byBlock[blockName], name)
	}

	width := 80
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	order := append(blocks.Names(), "No_Block")
	for _, blockName := range order {
		names := byBlock[blockName]
		if len(names) == 0 {
			continue
		}
		fmt.Printf("\n%s (%d missing):\n", blockName, len(names))
		printColumns(names, width)
	}
}

func printColumns(names []string, width int) {
	colWidth := 0
	for _, name := range names {
		if len(name) > colWidth {
			colWidth = len(name)
		}
	}
	colWidth += 2

	numCols := (width - 2) / colWidth
	if numCols < 1 {
		numCols = 1
	}
	for i, name := range names {
		if i%numCols == 0 {
			fmt.Print("  ")
		}
		if (i+1)%numCols == 0 || i == len(names)-1 {
			fmt.Println(name)
		} else {
			fmt.Printf("%-*s", colWidth, name)
		}
	}
}
