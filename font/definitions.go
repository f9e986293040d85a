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

package font

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/hexfont/curated"
)

// DefinitionsError is the pattern for all errors returned by
// ParseDefinitions().
const DefinitionsError = "font: definitions: %s [line %d]"

const (
	definitionsComment = "#"
	definitionsGlyph   = "glyph"
	definitionsLit     = '#'
	definitionsUnlit   = '.'
)

// ParseDefinitions reads a font definitions file. Every nibble must be defined
// exactly once. See the definitions.txt file in this package for the format.
func ParseDefinitions(r io.Reader) (Table, error) {
	var tab Table
	var defined [NumGlyphs]bool

	// the glyph currently being defined. a value of -1 indicates that no glyph
	// is being defined
	current := -1
	rows := 0

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())

		if s == "" || strings.HasPrefix(s, definitionsComment+" ") || s == definitionsComment {
			continue
		}

		f := strings.Fields(s)
		if f[0] == definitionsGlyph {
			if current != -1 && rows != Height {
				return Table{}, curated.Errorf(DefinitionsError, "glyph "+Label(uint8(current))+" is incomplete", line)
			}
			if len(f) != 2 {
				return Table{}, curated.Errorf(DefinitionsError, "glyph keyword requires exactly one nibble value", line)
			}

			n, err := strconv.ParseUint(f[1], 0, 8)
			if err != nil || n >= NumGlyphs {
				return Table{}, curated.Errorf(DefinitionsError, "invalid nibble value ("+f[1]+")", line)
			}
			if defined[n] {
				return Table{}, curated.Errorf(DefinitionsError, "glyph "+Label(uint8(n))+" defined more than once", line)
			}

			defined[n] = true
			current = int(n)
			rows = 0
			continue
		}

		// every other line is a row of pixels
		if current == -1 {
			return Table{}, curated.Errorf(DefinitionsError, "pixel row outside of glyph definition", line)
		}
		if rows >= Height {
			return Table{}, curated.Errorf(DefinitionsError, "too many rows for glyph "+Label(uint8(current)), line)
		}
		if len(s) != Width {
			return Table{}, curated.Errorf(DefinitionsError, "row must be exactly "+strconv.Itoa(Width)+" pixels wide", line)
		}

		var v uint8
		for _, c := range s {
			v <<= 1
			switch c {
			case definitionsLit:
				v |= 0x01
			case definitionsUnlit:
			default:
				return Table{}, curated.Errorf(DefinitionsError, "unrecognised pixel character ("+string(c)+")", line)
			}
		}

		tab[current][rows] = v
		rows++
	}

	if err := scanner.Err(); err != nil {
		return Table{}, curated.Errorf(DefinitionsError, err.Error(), line)
	}

	if current != -1 && rows != Height {
		return Table{}, curated.Errorf(DefinitionsError, "glyph "+Label(uint8(current))+" is incomplete", line)
	}

	for n := range defined {
		if !defined[n] {
			return Table{}, curated.Errorf(DefinitionsError, "glyph "+Label(uint8(n))+" is not defined", line)
		}
	}

	return tab, nil
}
