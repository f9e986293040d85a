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

package emit_test

import (
	"strings"
	"testing"

	"github.com/zachomedia/go-bdf"
	"golang.org/x/image/math/fixed"

	"github.com/jetsetilly/hexfont/emit"
	"github.com/jetsetilly/hexfont/font"
	"github.com/jetsetilly/hexfont/test"
)

func TestRune(t *testing.T) {
	test.ExpectEquality(t, emit.Rune(0x0), '0')
	test.ExpectEquality(t, emit.Rune(0x9), '9')
	test.ExpectEquality(t, emit.Rune(0xA), 'A')
	test.ExpectEquality(t, emit.Rune(0xF), 'F')
}

func TestBDFText(t *testing.T) {
	b := emit.BDF(&font.HexDigits)
	test.ExpectSuccess(t, strings.HasPrefix(b, "STARTFONT 2.1\n"))
	test.ExpectSuccess(t, strings.HasSuffix(b, "ENDFONT\n"))
	test.ExpectEquality(t, strings.Count(b, "STARTCHAR "), font.NumGlyphs)
	test.ExpectEquality(t, strings.Count(b, "ENDCHAR\n"), font.NumGlyphs)

	// the zero glyph. rows are padded to a whole byte
	test.ExpectSuccess(t, strings.Contains(b, "STARTCHAR zero\nENCODING 48\nSWIDTH 720 0\nDWIDTH 6 0\nBBX 6 8 0 0\nBITMAP\n78\n84\n8C\n94\nA4\nC4\n84\n78\nENDCHAR\n"))
}

// the BDF output must be readable by a third-party BDF parser and the glyphs in
// the resulting font face must be the same as the glyphs in the table
func TestBDFFace(t *testing.T) {
	f, err := bdf.Parse([]byte(emit.BDF(&font.HexDigits)))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.DefaultChar, '0')

	face := f.NewFace()
	for n, g := range font.HexDigits {
		r := emit.Rune(uint8(n))

		adv, ok := face.GlyphAdvance(r)
		test.DemandSuccess(t, ok, font.Label(uint8(n)))
		test.ExpectEquality(t, adv, fixed.I(font.Width), font.Label(uint8(n)))

		dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, font.Height), r)
		test.DemandSuccess(t, ok, font.Label(uint8(n)))
		test.DemandEquality(t, dr.Dx(), font.Width, font.Label(uint8(n)))
		test.DemandEquality(t, dr.Dy(), font.Height, font.Label(uint8(n)))

		for row := range font.Height {
			for col := range font.Width {
				_, _, _, a := mask.At(maskp.X+col, maskp.Y+row).RGBA()
				test.ExpectEquality(t, a > 0, g.Pixel(col, row), font.Label(uint8(n)), row, col)
			}
		}
	}
}
