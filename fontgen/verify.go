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

package fontgen

import (
	"fmt"
	"io"

	"github.com/jetsetilly/hexfont/emit"
	"github.com/jetsetilly/hexfont/font"
)

// Mismatch is a single row that differs between a header file and the font
// table it is verified against.
type Mismatch struct {
	Nibble   uint8
	Row      int
	Got      uint8
	Expected uint8
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s row %d: 0b%0*b, expected 0b%0*b",
		font.Label(m.Nibble), m.Row, font.Width, m.Got, font.Width, m.Expected)
}

// Verify parses a previously emitted header file and compares it with the font
// table. An error is returned if the header cannot be parsed. Otherwise, every
// row that differs is returned as a Mismatch, in nibble and row order. An
// empty list means the header matches the table.
func Verify(r io.Reader, t *font.Table) ([]Mismatch, error) {
	h, err := emit.ParseHeader(r)
	if err != nil {
		return nil, err
	}

	var mismatches []Mismatch
	for n := range font.NumGlyphs {
		for row := range font.Height {
			if h[n][row] != t[n][row] {
				mismatches = append(mismatches, Mismatch{
					Nibble:   uint8(n),
					Row:      row,
					Got:      h[n][row],
					Expected: t[n][row],
				})
			}
		}
	}

	return mismatches, nil
}
