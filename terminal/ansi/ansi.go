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

// Package ansi defines ANSI control sequences for the colours used to
// highlight the lit pixels of the preview.
package ansi

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/hexfont/curated"
)

// Sentinal error patterns.
const (
	UnknownColor = "ansi: unknown colour (%s)"
)

// Color is one of the eight ANSI colours or the terminal's default colour.
type Color int

// List of valid Color values.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Default Color = 9
)

var colorNames = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
	"normal":  Default,
}

// ParseColor returns the Color for the name. Comparison is case insensitive
// and "normal" is the default colour.
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[strings.ToLower(name)]
	if !ok {
		return Default, curated.Errorf(UnknownColor, name)
	}
	return c, nil
}

// Pen describes the colours and attributes of text. A nil colour is not
// included in the control sequence.
type Pen struct {
	Ink         *Color
	Paper       *Color
	BrightInk   bool
	BrightPaper bool
	Bold        bool
	Underline   bool
}

// Sequence returns the control sequence that selects the pen.
func (p Pen) Sequence() string {
	var params []string

	if p.Ink != nil {
		base := 30
		if p.BrightInk {
			base = 90
		}
		params = append(params, fmt.Sprintf("%d", base+int(*p.Ink)))
	}
	if p.Paper != nil {
		base := 40
		if p.BrightPaper {
			base = 100
		}
		params = append(params, fmt.Sprintf("%d", base+int(*p.Paper)))
	}
	if p.Bold {
		params = append(params, "1")
	}
	if p.Underline {
		params = append(params, "4")
	}

	return fmt.Sprintf("\033[%sm", strings.Join(params, ";"))
}

// Pens is the table of bright colours on the default background, indexed by
// colour name.
var Pens map[string]string

// DimPens is the table of normal intensity colours on the default
// background.
var DimPens map[string]string

// NormalPen is the control sequence for regular text.
var NormalPen = Pen{}.Sequence()

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	paper := Default
	for name, c := range colorNames {
		if c == Black || c == Default {
			continue
		}
		ink := c
		Pens[name] = Pen{Ink: &ink, Paper: &paper, BrightInk: true}.Sequence()
		DimPens[name] = Pen{Ink: &ink, Paper: &paper}.Sequence()
	}
}

// Paint surrounds every occurrence of the rune in s with the pen and the
// normal pen.
func Paint(s string, r rune, pen string) string {
	return strings.ReplaceAll(s, string(r), pen+string(r)+NormalPen)
}
