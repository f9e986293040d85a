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
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/hexfont/font"
	"github.com/jetsetilly/hexfont/matrix"
	"github.com/jetsetilly/hexfont/terminal/ansi"
)

// Characters used to draw pixels.
const (
	Lit   = '█'
	Unlit = '·'
)

// the number of characters used for a single glyph row in the preview. the
// indent, the pixels, the gap and the binary value in parenthesis
const blockWidth = 2 + font.Width + 2 + 3 + font.Width + 1

// gap between glyphs when arranged in columns
const columnGap = 2

// litPen is the pen used for lit pixels when colour is enabled.
const litPen = "green"

// Options for the preview.
type Options struct {
	// colour lit pixels using ANSI control codes
	Color bool

	// number of glyphs per line. values of one or less produce the list
	// layout
	Columns int
}

// AutoColumns returns the number of glyphs that will fit on a line of the
// specified width.
func AutoColumns(width int) int {
	c := (width + columnGap) / (blockWidth + columnGap)
	if c < 1 {
		return 1
	}
	if c > font.NumGlyphs {
		return font.NumGlyphs
	}
	return c
}

// visual returns the pixels of a glyph row.
func visual(g font.Glyph, row int, opts Options) string {
	s := strings.Builder{}
	pen := false
	for col := range font.Width {
		lit := g.Pixel(col, row)
		if opts.Color && lit != pen {
			if lit {
				s.WriteString(ansi.Pens[litPen])
			} else {
				s.WriteString(ansi.NormalPen)
			}
			pen = lit
		}
		if lit {
			s.WriteRune(Lit)
		} else {
			s.WriteRune(Unlit)
		}
	}
	if pen {
		s.WriteString(ansi.NormalPen)
	}
	return s.String()
}

// row returns a complete preview line for a glyph row. the visual
// representation and the binary value.
func row(g font.Glyph, r int, opts Options) string {
	return fmt.Sprintf("  %s  (0b%0*b)", visual(g, r, opts), font.Width, g[r])
}

// Glyph writes the preview of a single glyph.
func Glyph(w io.Writer, label string, g font.Glyph, opts Options) {
	io.WriteString(w, fmt.Sprintf("\n%s:\n", label))
	for r := range font.Height {
		io.WriteString(w, row(g, r, opts))
		io.WriteString(w, "\n")
	}
}

// Table writes the preview of every glyph in the table.
func Table(w io.Writer, t *font.Table, opts Options) {
	if opts.Columns <= 1 {
		for i, g := range t {
			Glyph(w, font.Label(uint8(i)), g, opts)
		}
		return
	}

	gap := strings.Repeat(" ", columnGap)

	for start := 0; start < font.NumGlyphs; start += opts.Columns {
		end := min(start+opts.Columns, font.NumGlyphs)

		// labels. the label is indented to line up with the pixels
		labels := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			labels = append(labels, fmt.Sprintf("%-*s", blockWidth, "  "+font.Label(uint8(i))+":"))
		}
		io.WriteString(w, "\n")
		io.WriteString(w, strings.TrimRight(strings.Join(labels, gap), " "))
		io.WriteString(w, "\n")

		for r := range font.Height {
			rows := make([]string, 0, end-start)
			for i := start; i < end; i++ {
				rows = append(rows, row(t[i], r, opts))
			}
			io.WriteString(w, strings.Join(rows, gap))
			io.WriteString(w, "\n")
		}
	}
}

// Matrix writes the LED matrix bitmap inside a border, followed by the packed
// frame.
func Matrix(w io.Writer, b *matrix.Bitmap, opts Options) {
	border := "+" + strings.Repeat("-", matrix.Columns) + "+\n"

	io.WriteString(w, border)
	for _, l := range strings.Split(strings.TrimSuffix(b.Render(Lit, Unlit), "\n"), "\n") {
		if opts.Color {
			l = ansi.Paint(l, Lit, ansi.Pens[litPen])
		}
		io.WriteString(w, "|"+l+"|\n")
	}
	io.WriteString(w, border)
	io.WriteString(w, fmt.Sprintf("frame: %s\n", b.Frame()))
}
