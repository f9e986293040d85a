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

package font_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/font"
	"github.com/jetsetilly/hexfont/test"
)

func TestTableMatchesDefinitions(t *testing.T) {
	f, err := os.Open("definitions.txt")
	test.DemandSuccess(t, err)
	defer f.Close()

	tab, err := font.ParseDefinitions(f)
	test.DemandSuccess(t, err)

	for i := range font.NumGlyphs {
		test.ExpectEquality(t, font.HexDigits[i], tab[i], font.Label(uint8(i)))
	}
}

func TestTableIsValid(t *testing.T) {
	test.ExpectSuccess(t, font.HexDigits.Validate())
}

// a selection of rows checked against the literal bit patterns
func TestBitPatterns(t *testing.T) {
	test.ExpectEquality(t, font.HexDigits[0x0], font.Glyph{0b011110, 0b100001, 0b100011, 0b100101, 0b101001, 0b110001, 0b100001, 0b011110})
	test.ExpectEquality(t, font.HexDigits[0x1], font.Glyph{0b001000, 0b011000, 0b001000, 0b001000, 0b001000, 0b001000, 0b001000, 0b011100})
	test.ExpectEquality(t, font.HexDigits[0x7], font.Glyph{0b111111, 0b000001, 0b000010, 0b000100, 0b001000, 0b010000, 0b010000, 0b010000})
	test.ExpectEquality(t, font.HexDigits[0xA], font.Glyph{0b001100, 0b010010, 0b100001, 0b100001, 0b111111, 0b100001, 0b100001, 0b100001})
	test.ExpectEquality(t, font.HexDigits[0xD], font.Glyph{0b111100, 0b100010, 0b100001, 0b100001, 0b100001, 0b100001, 0b100010, 0b111100})
	test.ExpectEquality(t, font.HexDigits[0xF], font.Glyph{0b111111, 0b100000, 0b100000, 0b111110, 0b100000, 0b100000, 0b100000, 0b100000})
}

func TestLookup(t *testing.T) {
	for n := range uint8(font.NumGlyphs) {
		g, err := font.Lookup(n)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, g, font.HexDigits[n])
	}

	_, err := font.Lookup(16)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, font.InvalidNibble))
}

func TestPixel(t *testing.T) {
	g := font.HexDigits[0x0]

	// top row of zero is .####.
	test.ExpectFailure(t, g.Pixel(0, 0))
	test.ExpectSuccess(t, g.Pixel(1, 0))
	test.ExpectSuccess(t, g.Pixel(4, 0))
	test.ExpectFailure(t, g.Pixel(5, 0))

	// out of range
	test.ExpectFailure(t, g.Pixel(-1, 1))
	test.ExpectFailure(t, g.Pixel(font.Width, 1))
	test.ExpectFailure(t, g.Pixel(0, font.Height))
}

func TestGlyphString(t *testing.T) {
	test.ExpectEquality(t, font.HexDigits[0x1].String(),
		"..#...\n.##...\n..#...\n..#...\n..#...\n..#...\n..#...\n.###..")
}

func TestValidate(t *testing.T) {
	g := font.HexDigits[0x8]
	test.ExpectSuccess(t, g.Validate("0x8"))

	g[3] = 0b1000000
	err := g.Validate("0x8")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, font.RowOverflow))

	tab := font.HexDigits
	tab[0xC][0] = 0xff
	test.ExpectFailure(t, tab.Validate())
}

func TestNibbles(t *testing.T) {
	h, l := font.Nibbles(0xa7)
	test.ExpectEquality(t, h, 0xa)
	test.ExpectEquality(t, l, 0x7)

	h, l = font.Nibbles(0x00)
	test.ExpectEquality(t, h, 0x0)
	test.ExpectEquality(t, l, 0x0)
}

func TestLabel(t *testing.T) {
	test.ExpectEquality(t, font.Label(0), "0x0")
	test.ExpectEquality(t, font.Label(10), "0xA")
	test.ExpectEquality(t, font.Label(15), "0xF")
}
