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

package matrix_test

import (
	"testing"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/font"
	"github.com/jetsetilly/hexfont/matrix"
	"github.com/jetsetilly/hexfont/test"
)

func TestTwoHexDigits(t *testing.T) {
	b := matrix.TwoHexDigits(0x1F)
	test.ExpectEquality(t, b.String(), ""+
		"..#...######\n"+
		".##...#.....\n"+
		"..#...#.....\n"+
		"..#...#####.\n"+
		"..#...#.....\n"+
		"..#...#.....\n"+
		"..#...#.....\n"+
		".###..#.....\n")
}

func TestHexDigit(t *testing.T) {
	b, err := matrix.HexDigit(0x8, 0)
	test.DemandSuccess(t, err)
	for row := range font.Height {
		for col := range matrix.Columns {
			test.ExpectEquality(t, b[row][col], font.HexDigits[0x8].Pixel(col, row), row, col)
		}
	}

	// glyph is clipped at the right edge of the matrix
	b, err = matrix.HexDigit(0xE, 9)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.String(), ""+
		".........###\n"+
		".........#..\n"+
		".........#..\n"+
		".........###\n"+
		".........#..\n"+
		".........#..\n"+
		".........#..\n"+
		".........###\n")

	_, err = matrix.HexDigit(16, 0)
	test.ExpectSuccess(t, curated.Is(err, matrix.InvalidDigit))
	_, err = matrix.HexDigit(0, 12)
	test.ExpectSuccess(t, curated.Is(err, matrix.InvalidStartColumn))
	_, err = matrix.HexDigit(0, -1)
	test.ExpectSuccess(t, curated.Is(err, matrix.InvalidStartColumn))
}

func TestPutGlyphOverwrites(t *testing.T) {
	b := matrix.TwoHexDigits(0x88)
	b.PutGlyph(font.HexDigits[0x1], 0)
	c := matrix.TwoHexDigits(0x18)
	test.ExpectEquality(t, b, c)

	// negative start column clips on the left. only the rightmost column of the
	// glyph is visible
	var d matrix.Bitmap
	d.PutGlyph(font.HexDigits[0xF], -5)
	test.ExpectEquality(t, d.Lit(), 1)
}

func TestFramePacking(t *testing.T) {
	var b matrix.Bitmap

	// first LED is the top bit of the first word
	b[0][0] = true
	test.ExpectEquality(t, b.Frame(), matrix.Frame{0x80000000, 0, 0})

	// LED 32 is on the third row, ninth column
	b = matrix.Bitmap{}
	b[2][8] = true
	test.ExpectEquality(t, b.Frame(), matrix.Frame{0, 0x80000000, 0})

	// last LED is the bottom bit of the last word
	b = matrix.Bitmap{}
	b[7][11] = true
	test.ExpectEquality(t, b.Frame(), matrix.Frame{0, 0, 0x00000001})

	// a fully lit matrix
	for row := range matrix.Rows {
		for col := range matrix.Columns {
			b[row][col] = true
		}
	}
	test.ExpectEquality(t, b.Frame(), matrix.Frame{0xffffffff, 0xffffffff, 0xffffffff})
	test.ExpectEquality(t, b.Frame().String(), "{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}")
}

func TestFrameRoundTrip(t *testing.T) {
	for v := range 256 {
		b := matrix.TwoHexDigits(uint8(v))
		test.ExpectEquality(t, b.Frame().Bitmap(), b, v)
	}
}
