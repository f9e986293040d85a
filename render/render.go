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

// Package render draws text with the hexadecimal font. Rather than drawing the
// table directly, the table is first converted to a BDF font and then loaded
// through a BDF parser. The images produced by this package are therefore a
// check on the BDF output as much as they are a rendering of the font.
package render

import (
	"image"
	"strings"

	"github.com/zachomedia/go-bdf"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/emit"
	"github.com/jetsetilly/hexfont/font"
)

// Sentinal error patterns.
const (
	FaceError         = "render: face: %v"
	UnsupportedString = "render: string contains characters not in the font (%s)"
)

// Margin is the number of blank pixels around the edge of a specimen image.
const Margin = 1

// SpecimenText is every character in the font, in nibble order.
const SpecimenText = "0123456789ABCDEF"

// Face returns the table as a font face.
func Face(t *font.Table) (xfont.Face, error) {
	f, err := bdf.Parse([]byte(emit.BDF(t)))
	if err != nil {
		return nil, curated.Errorf(FaceError, err)
	}
	return f.NewFace(), nil
}

// Specimen draws the string into a new greyscale image. Lit pixels are white
// and unlit pixels are black. Lower case letters are drawn as upper case.
func Specimen(t *font.Table, s string) (*image.Gray, error) {
	s = strings.ToUpper(s)
	for _, r := range s {
		if !strings.ContainsRune(SpecimenText, r) {
			return nil, curated.Errorf(UnsupportedString, s)
		}
	}

	face, err := Face(t)
	if err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, len(s)*font.Width+Margin*2, font.Height+Margin*2))

	d := xfont.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(Margin, Margin+font.Height),
	}
	d.DrawString(s)

	return img, nil
}
