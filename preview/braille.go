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

package preview

import (
	"io"

	"github.com/kevin-cantwell/dotmatrix"

	"github.com/jetsetilly/hexfont/font"
	"github.com/jetsetilly/hexfont/render"
)

// Braille writes a specimen of the font as braille characters. Each braille
// character covers a block of two by four pixels.
func Braille(w io.Writer, t *font.Table, text string) error {
	if text == "" {
		text = render.SpecimenText
	}

	img, err := render.Specimen(t, text)
	if err != nil {
		return err
	}

	return dotmatrix.Print(w, img)
}
