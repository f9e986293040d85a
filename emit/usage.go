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

// usage example showing how the header is used to display a byte on a 12x8 LED
// matrix as two hexadecimal digits
const usageExample = `
// complete example: display two hexadecimal digits
void displayTwoHexDigits(uint8_t value) {
  uint8_t highNibble = (value >> 4) & 0x0F;  // high 4 bits
  uint8_t lowNibble = value & 0x0F;           // low 4 bits
  
  uint8_t frame[8][12] = {0};
  
  // first digit (columns 0-5)
  for(int row = 0; row < 8; row++) {
    uint8_t pattern = font_6x8[highNibble][row];
    for(int col = 0; col < 6; col++) {
      frame[row][col] = (pattern >> (5 - col)) & 0x01;
    }
  }
  
  // second digit (columns 6-11)
  for(int row = 0; row < 8; row++) {
    uint8_t pattern = font_6x8[lowNibble][row];
    for(int col = 0; col < 6; col++) {
      frame[row][col + 6] = (pattern >> (5 - col)) & 0x01;
    }
  }
  
  // convert and display
  uint32_t frameData[3];
  bitmapToFrame(frame, frameData);
  matrix.loadFrame(frameData);
}
`

// Usage returns the contents of the usage example file.
func Usage() string {
	return usageExample
}
