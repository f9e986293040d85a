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

// Package emit formats a font.Table as text artifacts.
//
// The Header() and Usage() functions produce the default output files. The
// header declares the table as a const uint8_t array of sixteen rows of eight
// binary literals. It is followed by a helper function that draws a single
// digit into an LED matrix frame. The usage example shows how to display a
// byte as two digits.
//
// The BDF() function produces a BDF 2.1 bitmap font and GoSource() produces a
// gofmt'd Go declaration of the table. The font package's own table is
// produced with GoSource().
//
// ParseHeader() reads a header file produced by Header() back into a
// font.Table. It is strict about the shape of the array declaration but
// indifferent to white space and comments.
package emit
