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

// Package preview prints human readable previews of the font to a terminal.
//
// The default layout lists each glyph in turn with its label and then one line
// per row. Each row shows the pixels of the row followed by the binary value of
// the row. For example, the first two rows of the zero glyph:
//
//	0x0:
//	  ·████·  (0b011110)
//	  █····█  (0b100001)
//
// When the Columns option is greater than one the glyphs are arranged side by
// side. The AutoColumns() function will calculate a suitable number of
// columns for a terminal width.
//
// The Braille() function instead prints a specimen of the font as unicode
// braille characters. The specimen is rendered through the BDF output.
package preview
