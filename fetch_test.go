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
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shift-editor/charsets/internal/testdata"
)

func TestFetchCharset(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/charsets/adobe-latin-1.txt",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write(testdata.AdobeLatin1)
		})
	server := httptest.NewServer(mux)
	defer server.Close()

	opt := &Config{
		BaseURL: server.URL + "/charsets/",
		Client:  server.Client(),
	}
	set, err := FetchCharset("adobe-latin-1", opt)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 12 {
		t.Errorf("wrong number of entries %d", set.Len())
	}
	if _, ok := set.Get("Euro"); !ok {
		t.Error("missing entry Euro")
	}
}

func TestFetchBlocks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ucd/Blocks.txt",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write(testdata.Blocks)
		})
	server := httptest.NewServer(mux)
	defer server.Close()

	opt := &Config{
		BlocksURL: server.URL + "/ucd/Blocks.txt",
		Client:    server.Client(),
	}
	blocks, err := FetchBlocks(opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 13 {
		t.Errorf("wrong number of blocks %d", len(blocks))
	}
}

func TestFetchMissing(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	opt := &Config{
		BaseURL: server.URL + "/",
		Client:  server.Client(),
	}
	_, err := FetchCharset("no-such-charset", opt)
	if err == nil {
		t.Fatal("expected error for missing charset")
	}
	if !strings.Contains(err.Error(), "bad GET status") {
		t.Errorf("wrong error %q", err)
	}
}

func TestFetchParseError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/bad.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Unicode\tUTF-8\tGlyph name\tCharacter name\nbroken row\n"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	opt := &Config{
		BaseURL: server.URL + "/",
		Client:  server.Client(),
	}
	_, err := FetchCharset("bad", opt)

	var pErr *ParseError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pErr.Line != 2 {
		t.Errorf("wrong line %d", pErr.Line)
	}
	if !strings.Contains(err.Error(), "/bad.txt") {
		t.Errorf("URL missing from error %q", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	for _, opt := range []*Config{nil, {}} {
		if got := opt.blocksURL(); got != DefaultBlocksURL {
			t.Errorf("wrong blocks URL %q", got)
		}
		if got := opt.baseURL(); got != DefaultBaseURL {
			t.Errorf("wrong base URL %q", got)
		}
		if got := opt.client(); got != http.DefaultClient {
			t.Errorf("wrong client %v", got)
		}
	}

	opt := &Config{
		BlocksURL: "http://example.com/Blocks.txt",
		BaseURL:   "http://example.com/charsets/",
		Client:    &http.Client{},
	}
	if opt.blocksURL() != opt.BlocksURL {
		t.Errorf("blocks URL not honoured")
	}
	if opt.baseURL() != opt.BaseURL {
		t.Errorf("base URL not honoured")
	}
	if opt.client() != opt.Client {
		t.Errorf("client not honoured")
	}
}
