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
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/font"
)

// HeaderError is the pattern for all errors returned by ParseHeader().
const HeaderError = "emit: header: %s"

var (
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	declaration  = regexp.MustCompile(`const\s+uint8_t\s+` + ArrayName + `\s*\[\s*(\d+)\s*\]\s*\[\s*(\d+)\s*\]\s*=\s*\{`)
	entries      = regexp.MustCompile(`^\s*(\{[^{}]*\}\s*,\s*)*\{[^{}]*\}\s*,?\s*$`)
	entry        = regexp.MustCompile(`\{([^{}]*)\}`)
)

// ParseHeader reads the array declaration from a header file and returns it as
// a font.Table. Anything outside of the declaration is ignored.
func ParseHeader(r io.Reader) (font.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return font.Table{}, curated.Errorf(HeaderError, err)
	}

	src := blockComment.ReplaceAllString(string(data), "")
	src = lineComment.ReplaceAllString(src, "")

	loc := declaration.FindStringSubmatchIndex(src)
	if loc == nil {
		return font.Table{}, curated.Errorf(HeaderError, "no declaration of "+ArrayName)
	}

	// the dimensions of the array must match the font
	glyphs, _ := strconv.Atoi(src[loc[2]:loc[3]])
	rows, _ := strconv.Atoi(src[loc[4]:loc[5]])
	if glyphs != font.NumGlyphs || rows != font.Height {
		return font.Table{}, curated.Errorf(HeaderError,
			fmt.Sprintf("array dimensions are [%d][%d] not [%d][%d]", glyphs, rows, font.NumGlyphs, font.Height))
	}

	// the body of the array runs until the terminating "};" sequence
	body := src[loc[1]:]
	end := strings.Index(body, "};")
	if end == -1 {
		return font.Table{}, curated.Errorf(HeaderError, "unterminated array declaration")
	}
	body = body[:end]

	if !entries.MatchString(body) {
		return font.Table{}, curated.Errorf(HeaderError, "malformed array initialiser")
	}

	e := entry.FindAllStringSubmatch(body, -1)
	if len(e) != font.NumGlyphs {
		return font.Table{}, curated.Errorf(HeaderError,
			fmt.Sprintf("array has %d entries not %d", len(e), font.NumGlyphs))
	}

	var tab font.Table
	for i := range e {
		lits := strings.Split(e[i][1], ",")

		// allow trailing comma
		if len(lits) > 0 && strings.TrimSpace(lits[len(lits)-1]) == "" {
			lits = lits[:len(lits)-1]
		}

		if len(lits) != font.Height {
			return font.Table{}, curated.Errorf(HeaderError,
				fmt.Sprintf("entry %s has %d rows not %d", font.Label(uint8(i)), len(lits), font.Height))
		}

		for row, l := range lits {
			l = strings.TrimSpace(l)
			v, err := strconv.ParseUint(l, 0, 8)
			if err != nil {
				return font.Table{}, curated.Errorf(HeaderError,
					fmt.Sprintf("entry %s row %d: invalid literal (%s)", font.Label(uint8(i)), row, l))
			}
			tab[i][row] = uint8(v)
		}
	}

	if err := tab.Validate(); err != nil {
		return font.Table{}, curated.Errorf(HeaderError, err)
	}

	return tab, nil
}
