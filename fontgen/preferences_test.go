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

package fontgen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/emit"
	"github.com/jetsetilly/hexfont/fontgen"
	"github.com/jetsetilly/hexfont/prefs"
	"github.com/jetsetilly/hexfont/test"
)

func TestDefaults(t *testing.T) {
	p, err := fontgen.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.OutputDir.String(), ".")
	test.ExpectSuccess(t, p.Preview.Bool())
	test.ExpectSuccess(t, p.Code.Bool())
	test.ExpectFailure(t, p.Color.Bool())
	test.ExpectEquality(t, p.Columns.Int(), 1)

	formats, err := p.FormatList()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(formats), 2)
	test.ExpectEquality(t, formats[0], emit.FormatHeader)
	test.ExpectEquality(t, formats[1], emit.FormatUsage)

	opts := p.EmitOptions()
	test.ExpectEquality(t, opts.Go.Package, "font")
	test.ExpectEquality(t, opts.Go.Variable, "HexDigits")

	test.ExpectSuccess(t, strings.Contains(p.String(), "output.dir :: .\n"))
	test.ExpectEquality(t, fontgen.EnvFiles()[1], ".env")
}

func TestInvalidValues(t *testing.T) {
	p, err := fontgen.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Formats.Set("header,png"))
	test.ExpectEquality(t, p.Formats.String(), "header,usage")

	test.ExpectFailure(t, p.Columns.Set(-1))
	test.ExpectEquality(t, p.Columns.Int(), 1)

	test.ExpectFailure(t, p.GoPackage.Set("hex font"))
	test.ExpectFailure(t, p.GoVariable.Set("1table"))
	test.ExpectSuccess(t, p.GoVariable.Set("Digits"))
	test.ExpectEquality(t, p.EmitOptions().Go.Variable, "Digits")
}

func TestLoad(t *testing.T) {
	p, err := fontgen.NewPreferences()
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "hexfont.env")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("HEXFONT_OUTPUT_FORMATS=go,bdf\nHEXFONT_PREVIEW_COLUMNS=4\n"), 0644))

	prefs.PushCommandLineStack("preview.color::true")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, p.Load(fn))
	test.ExpectEquality(t, p.Columns.Int(), 4)
	test.ExpectSuccess(t, p.Color.Bool())

	formats, err := p.FormatList()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(formats), 2)
	test.ExpectEquality(t, formats[0], emit.FormatBDF)
	test.ExpectEquality(t, formats[1], emit.FormatGo)

	test.DemandEquality(t, len(p.Sources()), 1)
	test.ExpectEquality(t, p.Sources()[0], fn)

	// columns are not changed for output that is not a terminal
	opts := p.PreviewOptions(&test.CompareWriter{})
	test.ExpectEquality(t, opts.Columns, 4)
	test.ExpectSuccess(t, opts.Color)
}

func TestLoadInvalid(t *testing.T) {
	p, err := fontgen.NewPreferences()
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "hexfont.env")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("HEXFONT_GO_PACKAGE=hex-font\n"), 0644))

	err = p.Load(fn)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.LoadError))
	test.ExpectEquality(t, p.GoPackage.String(), "font")
}
