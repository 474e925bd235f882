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
	"fmt"
	"io"
	"net/http"
)

// The URLs the data is downloaded from if no other location is
// configured.
const (
	DefaultBlocksURL = "https://www.unicode.org/Public/14.0.0/ucd/Blocks.txt"
	DefaultBaseURL   = "https://adobe-type-tools.github.io/adobe-latin-charsets/"
)

// Config controls where [FetchBlocks] and [FetchCharset] download their
// data from.  A nil *Config uses the public upstream servers.
type Config struct {
	// BlocksURL is the location of the Unicode Blocks.txt file.
	// If this is empty, [DefaultBlocksURL] is used.
	BlocksURL string

	// BaseURL is the base URL the charset identifier is appended to.
	// If this is empty, [DefaultBaseURL] is used.
	BaseURL string

	// Client is used for all downloads.  If this is nil,
	// [http.DefaultClient] is used.
	Client *http.Client
}

func (c *Config) blocksURL() string {
	if c != nil && c.BlocksURL != "" {
		return c.BlocksURL
	}
	return DefaultBlocksURL
}

func (c *Config) baseURL() string {
	if c != nil && c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Config) client() *http.Client {
	if c != nil && c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

// FetchBlocks downloads and parses the Unicode block list.
func FetchBlocks(opt *Config) (Blocks, error) {
	url := opt.blocksURL()
	body, err := get(opt.client(), url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	blocks, err := ParseBlocks(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return blocks, nil
}

// FetchCharset downloads and parses the Adobe Latin character set with
// the given identifier, for example "adobe-latin-1".
func FetchCharset(id string, opt *Config) (*Charset, error) {
	url := opt.baseURL() + id + ".txt"
	body, err := get(opt.client(), url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	set, err := ParseCharset(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return set, nil
}

func get(client *http.Client, url string) (io.ReadCloser, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("bad GET status for %q: %s", url, resp.Status)
	}
	return resp.Body, nil
}
