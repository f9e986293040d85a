// This file is part of Hexfont.
//
// Hexfont is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hexfont is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hexfont.  If not, see <https://www.gnu.org/licenses/>.

package emit

import (
	"strings"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/font"
)

// Format identifies a type of output artifact.
type Format string

// List of supported formats.
const (
	FormatHeader Format = "header"
	FormatUsage  Format = "usage"
	FormatBDF    Format = "bdf"
	FormatGo     Format = "go"
)

// AllFormats lists every supported format in the order they are written.
var AllFormats = []Format{FormatHeader, FormatUsage, FormatBDF, FormatGo}

// DefaultFormats are the two text files written when no other formats are
// specified.
var DefaultFormats = []Format{FormatHeader, FormatUsage}

// UnknownFormat is returned by ParseFormats() for an unrecognised format.
const UnknownFormat = "emit: unknown format (%s)"

// Filename returns the default filename for the format.
func (f Format) Filename() string {
	switch f {
	case FormatHeader:
		return "font_6x8.h"
	case FormatUsage:
		return "example_usage.txt"
	case FormatBDF:
		return "hexfont_6x8.bdf"
	case FormatGo:
		return "font6x8.go"
	}
	return ""
}

// ParseFormats parses a comma separated list of formats. Comparisons are case
// insensitive and duplicates are ignored. The special value "all" selects
// every format. The empty string selects the default formats.
//
// The returned list is always in the order of AllFormats.
func ParseFormats(s string) ([]Format, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultFormats, nil
	}

	selected := make(map[Format]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if f == "all" {
			return AllFormats, nil
		}

		found := false
		for _, g := range AllFormats {
			if Format(f) == g {
				selected[g] = true
				found = true
				break // for loop
			}
		}
		if !found {
			return nil, curated.Errorf(UnknownFormat, f)
		}
	}

	if len(selected) == 0 {
		return DefaultFormats, nil
	}

	formats := make([]Format, 0, len(selected))
	for _, g := range AllFormats {
		if selected[g] {
			formats = append(formats, g)
		}
	}

	return formats, nil
}

// Options for the Emit() function. Only some options are relevant to some
// formats.
type Options struct {
	Go GoOptions
}

// Emit the table in the specified format.
func Emit(f Format, t *font.Table, opts Options) ([]byte, error) {
	switch f {
	case FormatHeader:
		return []byte(Header(t)), nil
	case FormatUsage:
		return []byte(Usage()), nil
	case FormatBDF:
		return []byte(BDF(t)), nil
	case FormatGo:
		return GoSource(t, opts.Go)
	}
	return nil, curated.Errorf(UnknownFormat, f)
}
