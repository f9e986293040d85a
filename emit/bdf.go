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
	"strings"

	"github.com/jetsetilly/hexfont/font"
)

// BDFName is the XLFD name of the font written by BDF().
const BDFName = "-hexfont-fixed-medium-r-normal--8-80-75-75-c-60-iso10646-1"

// the glyph names follow the postscript glyph names for the digits and capital
// letters
var bdfGlyphNames = [font.NumGlyphs]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "A", "B", "C", "D", "E", "F",
}

// Rune returns the character represented by the nibble. The digits 0 to 9 and
// the capital letters A to F.
func Rune(nibble uint8) rune {
	if nibble < 10 {
		return rune('0' + nibble)
	}
	return rune('A' + nibble - 10)
}

// BDF returns the table as a BDF 2.1 font. The font has one glyph for each of
// the characters 0-9 and A-F. The baseline is the bottom of the glyph.
func BDF(t *font.Table) string {
	const pointSize = font.Height
	const dpi = 75

	// scalable width in 1/1000ths of the point size
	swidth := font.Width * 1000 * 72 / (pointSize * dpi)

	s := strings.Builder{}
	s.WriteString("STARTFONT 2.1\n")
	s.WriteString(fmt.Sprintf("FONT %s\n", BDFName))
	s.WriteString(fmt.Sprintf("SIZE %d %d %d\n", pointSize, dpi, dpi))
	s.WriteString(fmt.Sprintf("FONTBOUNDINGBOX %d %d 0 0\n", font.Width, font.Height))
	s.WriteString("STARTPROPERTIES 3\n")
	s.WriteString(fmt.Sprintf("FONT_ASCENT %d\n", font.Height))
	s.WriteString("FONT_DESCENT 0\n")
	s.WriteString(fmt.Sprintf("DEFAULT_CHAR %d\n", Rune(0)))
	s.WriteString("ENDPROPERTIES\n")
	s.WriteString(fmt.Sprintf("CHARS %d\n", font.NumGlyphs))

	for i, g := range t {
		s.WriteString(fmt.Sprintf("STARTCHAR %s\n", bdfGlyphNames[i]))
		s.WriteString(fmt.Sprintf("ENCODING %d\n", Rune(uint8(i))))
		s.WriteString(fmt.Sprintf("SWIDTH %d 0\n", swidth))
		s.WriteString(fmt.Sprintf("DWIDTH %d 0\n", font.Width))
		s.WriteString(fmt.Sprintf("BBX %d %d 0 0\n", font.Width, font.Height))
		s.WriteString("BITMAP\n")
		for _, r := range g {
			// rows are padded on the right to a whole number of bytes
			s.WriteString(fmt.Sprintf("%02X\n", r<<(8-font.Width)))
		}
		s.WriteString("ENDCHAR\n")
	}

	s.WriteString("ENDFONT\n")
	return s.String()
}
