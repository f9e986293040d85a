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

// ArrayName is the name of the C array declared by Header().
const ArrayName = "font_6x8"

const headerBoilerPlate = "// 6x8 dot matrix font - hexadecimal digits 0-F\n" +
	"// each digit is 6 columns wide and 8 rows high\n\n"

// the helper function that follows the array in the header file
const hexLookup = "\n// usage example: display a single hexadecimal digit\n" +
	"void displayHexDigit(uint8_t digit, int startCol) {\n" +
	"  // digit: 0-15 (0x0-0xF)\n" +
	"  // startCol: starting column (0-11)\n" +
	"  uint8_t frame[8][12] = {0};\n" +
	"  \n" +
	"  for(int row = 0; row < 8; row++) {\n" +
	"    uint8_t pattern = font_6x8[digit][row];\n" +
	"    for(int col = 0; col < 6; col++) {\n" +
	"      if(startCol + col < 12) {\n" +
	"        frame[row][startCol + col] = (pattern >> (5 - col)) & 0x01;\n" +
	"      }\n" +
	"    }\n" +
	"  }\n" +
	"  \n" +
	"  // convert and display\n" +
	"  uint32_t frameData[3];\n" +
	"  bitmapToFrame(frame, frameData);\n" +
	"  matrix.loadFrame(frameData);\n" +
	"}\n"

// Array returns the C declaration of the table. Each glyph is preceded by a
// comment with its label and each row is a six digit binary literal.
func Array(t *font.Table) string {
	s := strings.Builder{}
	s.WriteString(headerBoilerPlate)
	s.WriteString(fmt.Sprintf("const uint8_t %s[%d][%d] = {\n", ArrayName, font.NumGlyphs, font.Height))

	for i, g := range t {
		s.WriteString(fmt.Sprintf("  // %s\n", font.Label(uint8(i))))
		s.WriteString("  {")
		s.WriteString(binaryLiterals(g))
		s.WriteString("}")
		if i < font.NumGlyphs-1 {
			s.WriteString(",")
		}
		s.WriteString("\n")
	}

	s.WriteString("};\n")
	return s.String()
}

// Header returns the contents of the header file. The C array followed by the
// displayHexDigit() helper function.
func Header(t *font.Table) string {
	return Array(t) + hexLookup
}

// binaryLiterals returns the rows of the glyph as a comma separated list of
// binary literals.
func binaryLiterals(g font.Glyph) string {
	rows := make([]string, 0, font.Height)
	for _, r := range g {
		rows = append(rows, fmt.Sprintf("0b%0*b", font.Width, r))
	}
	return strings.Join(rows, ", ")
}
