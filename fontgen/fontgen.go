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

package fontgen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/emit"
	"github.com/jetsetilly/hexfont/font"
	"github.com/jetsetilly/hexfont/logger"
	"github.com/jetsetilly/hexfont/paths"
	"github.com/jetsetilly/hexfont/preview"
)

// Sentinal error patterns.
const (
	InvalidTable = "fontgen: %v"
	WriteError   = "fontgen: cannot write %s: %v"
)

// Title is printed at the start of the pipeline output.
const Title = "6x8 dot matrix font generator - hexadecimal digits 0-F"

const bannerWidth = 60

// banner writes the title between two rules.
func banner(w io.Writer, title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "%s\n%s\n%s\n", rule, title, rule)
}

// description of each format used in the saved message
var descriptions = map[emit.Format]string{
	emit.FormatHeader: "code",
	emit.FormatUsage:  "usage example",
	emit.FormatBDF:    "BDF font",
	emit.FormatGo:     "Go source",
}

// Output describes a file written by Generate().
type Output struct {
	Format emit.Format
	Path   string
	Size   int
}

func (o Output) String() string {
	return fmt.Sprintf("%s (%s, %d bytes)", o.Path, o.Format, o.Size)
}

// Generate runs the pipeline for the font table. Progress is written to w.
// Returns the list of files written.
//
// Files are written in the order of emit.AllFormats. If writing a file fails
// then the files already written are left in place and the error is
// returned.
func Generate(w io.Writer, t *font.Table, p *Preferences) ([]Output, error) {
	if err := t.Validate(); err != nil {
		return nil, curated.Errorf(InvalidTable, err)
	}

	formats, err := p.FormatList()
	if err != nil {
		return nil, err
	}

	banner(w, Title)

	if p.Preview.Bool() {
		io.WriteString(w, "\n[font preview]\n")
		preview.Table(w, t, p.PreviewOptions(w))
	}

	if p.Code.Bool() {
		io.WriteString(w, "\n")
		banner(w, "[Arduino code]")
		io.WriteString(w, emit.Header(t))
	}

	io.WriteString(w, "\n")

	opts := p.EmitOptions()
	outputs := make([]Output, 0, len(formats))

	for _, f := range formats {
		data, err := emit.Emit(f, t, opts)
		if err != nil {
			return outputs, err
		}

		pth, err := paths.OutputPath(p.OutputDir.String(), f.Filename())
		if err != nil {
			return outputs, curated.Errorf(WriteError, f.Filename(), err)
		}

		if err := writeFile(pth, data); err != nil {
			return outputs, curated.Errorf(WriteError, pth, err)
		}

		o := Output{Format: f, Path: pth, Size: len(data)}
		outputs = append(outputs, o)
		logger.Logf(logger.Allow, "fontgen", "wrote %s", o)

		fmt.Fprintf(w, "✓ %s saved to %s\n", descriptions[f], pth)
	}

	return outputs, nil
}

// writeFile creates or truncates the file and writes data to it.
func writeFile(pth string, data []byte) (rerr error) {
	f, err := os.Create(pth)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	_, err = f.Write(data)
	return err
}
