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

// Package matrix models the 12x8 LED matrix that the generated header is
// intended for. It reproduces in Go what the displayHexDigit() and
// displayTwoHexDigits() helper functions do in C, including the packing of the
// bitmap into the three 32-bit words loaded by the matrix driver.
package matrix

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/font"
)

// Dimensions of the LED matrix.
const (
	Columns = 12
	Rows    = 8
)

// Sentinal error patterns.
const (
	InvalidDigit       = "matrix: invalid digit (%d)"
	InvalidStartColumn = "matrix: start column (%d) must be between 0 and 11"
)

// Bitmap is the state of every LED in the matrix. True is lit.
type Bitmap [Rows][Columns]bool

// PutGlyph draws the glyph into the bitmap with the leftmost column of the
// glyph at startCol. Columns that fall outside of the matrix are clipped. LEDs
// covered by unlit pixels of the glyph are turned off.
func (b *Bitmap) PutGlyph(g font.Glyph, startCol int) {
	for row := range font.Height {
		for col := range font.Width {
			c := startCol + col
			if c < 0 || c >= Columns {
				continue
			}
			b[row][c] = g.Pixel(col, row)
		}
	}
}

// Lit returns the number of lit LEDs in the bitmap.
func (b *Bitmap) Lit() int {
	n := 0
	for row := range Rows {
		for col := range Columns {
			if b[row][col] {
				n++
			}
		}
	}
	return n
}

// Render returns the bitmap as eight lines of twelve characters using the
// supplied runes for lit and unlit LEDs.
func (b *Bitmap) Render(lit rune, unlit rune) string {
	s := strings.Builder{}
	for row := range Rows {
		for col := range Columns {
			if b[row][col] {
				s.WriteRune(lit)
			} else {
				s.WriteRune(unlit)
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

func (b *Bitmap) String() string {
	return b.Render('#', '.')
}

// HexDigit returns a bitmap with a single digit drawn from the HexDigits font
// at the start column.
func HexDigit(digit uint8, startCol int) (Bitmap, error) {
	var b Bitmap

	g, err := font.Lookup(digit)
	if err != nil {
		return b, curated.Errorf(InvalidDigit, digit)
	}
	if startCol < 0 || startCol >= Columns {
		return b, curated.Errorf(InvalidStartColumn, startCol)
	}

	b.PutGlyph(g, startCol)
	return b, nil
}

// TwoHexDigits returns a bitmap with the value drawn as two hexadecimal digits.
// The high nibble occupies columns 0 to 5 and the low nibble columns 6 to 11.
func TwoHexDigits(value uint8) Bitmap {
	var b Bitmap
	high, low := font.Nibbles(value)
	b.PutGlyph(font.HexDigits[high], 0)
	b.PutGlyph(font.HexDigits[low], font.Width)
	return b
}

// Frame is the bitmap packed into the three 32-bit words used by the matrix
// driver.
//
// LED n, where n = row*12 + col, is stored in word n/32 at bit 31 - n%32. In
// other words, the first LED in the top-left corner of the matrix is the most
// significant bit of the first word.
type Frame [3]uint32

func (f Frame) String() string {
	return fmt.Sprintf("{0x%08X, 0x%08X, 0x%08X}", f[0], f[1], f[2])
}

// Frame packs the bitmap.
func (b *Bitmap) Frame() Frame {
	var f Frame
	for row := range Rows {
		for col := range Columns {
			if b[row][col] {
				n := row*Columns + col
				f[n/32] |= 1 << (31 - n%32)
			}
		}
	}
	return f
}

// Bitmap unpacks the frame.
func (f Frame) Bitmap() Bitmap {
	var b Bitmap
	for row := range Rows {
		for col := range Columns {
			n := row*Columns + col
			b[row][col] = (f[n/32]>>(31-n%32))&0x01 == 0x01
		}
	}
	return b
}
