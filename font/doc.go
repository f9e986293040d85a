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

// Package font defines the 6x8 pixel font for the sixteen hexadecimal digits.
//
// Each Glyph is eight rows high. Each row is a uint8 of which only the lower
// six bits are significant. Bit 5 is the leftmost pixel and bit 0 is the
// rightmost pixel. For example, the top row of the zero glyph is:
//
//	0b011110 -> .####.
//
// The HexDigits table is indexed by nibble value. It is generated from the
// definitions.txt file by the program in the generator directory and should
// not be edited by hand. To regenerate the table:
//
//	cd generator
//	go generate
//
// The ParseDefinitions() function is exported so that both the generator and
// the tests for this package can read the definitions file.
package font
