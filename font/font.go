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
	"fmt"
	"strings"

	"github.com/jetsetilly/hexfont/curated"
)

// Dimensions of every glyph in the font.
const (
	Width  = 6
	Height = 8
)

// NumGlyphs is the number of glyphs in the font. One for each possible nibble
// value.
const NumGlyphs = 16

// rowMask covers the significant bits of a glyph row.
const rowMask = (1 << Width) - 1

// Sentinal error patterns.
const (
	InvalidNibble = "font: invalid nibble (%d)"
	RowOverflow   = "font: glyph %s: row %d is wider than %d pixels (%#02x)"
)

// Glyph is the 8-row, 6-bit-wide pixel pattern representing one hexadecimal
// digit.
type Glyph [Height]uint8

// Pixel returns true if the pixel at the column and row is lit. Column zero is
// the leftmost pixel. Coordinates outside of the glyph are never lit.
func (g Glyph) Pixel(col int, row int) bool {
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return false
	}
	return (g[row]>>(Width-1-col))&0x01 == 0x01
}

// Validate checks that no row of the glyph has bits set outside of the glyph
// width. The label argument is used in the error message only.
func (g Glyph) Validate(label string) error {
	for row, r := range g {
		if r&^rowMask != 0 {
			return curated.Errorf(RowOverflow, label, row, Width, r)
		}
	}
	return nil
}

// String returns the glyph as eight lines of '#' (lit) and '.' (unlit)
// characters. The format is the same as the format of a glyph in the
// definitions file.
func (g Glyph) String() string {
	s := strings.Builder{}
	for row := range Height {
		if row > 0 {
			s.WriteRune('\n')
		}
		for col := range Width {
			if g.Pixel(col, row) {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
	}
	return s.String()
}

// Table is a complete font, indexed by nibble value.
type Table [NumGlyphs]Glyph

// Lookup returns the glyph for the nibble.
func (t *Table) Lookup(nibble uint8) (Glyph, error) {
	if nibble >= NumGlyphs {
		return Glyph{}, curated.Errorf(InvalidNibble, nibble)
	}
	return t[nibble], nil
}

// Validate checks every glyph in the table.
func (t *Table) Validate() error {
	for i, g := range t {
		if err := g.Validate(Label(uint8(i))); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the glyph in the HexDigits table for the nibble.
func Lookup(nibble uint8) (Glyph, error) {
	return HexDigits.Lookup(nibble)
}

// Nibbles splits a byte into its high and low nibbles.
func Nibbles(value uint8) (high uint8, low uint8) {
	return (value >> 4) & 0x0f, value & 0x0f
}

// Label returns the conventional label for a nibble. For example, "0xA".
func Label(nibble uint8) string {
	return fmt.Sprintf("0x%X", nibble)
}
