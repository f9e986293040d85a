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
	"go/token"
	"io"
	"os"

	"github.com/jetsetilly/hexfont/emit"
	"github.com/jetsetilly/hexfont/paths"
	"github.com/jetsetilly/hexfont/prefs"
	"github.com/jetsetilly/hexfont/preview"
	"github.com/jetsetilly/hexfont/terminal/easyterm"
)

// EnvFile is the name of the env file in the resource directory.
const EnvFile = "hexfont.env"

// the prefix for all environment variables
const envPrefix = "HEXFONT"

// Preferences defines and collates all the preference values used by the
// pipeline.
type Preferences struct {
	env *prefs.Env

	// directory that output files are written to
	OutputDir prefs.String

	// comma separated list of formats. see emit.ParseFormats()
	Formats prefs.String

	// print the preview of each glyph
	Preview prefs.Bool

	// print the header code
	Code prefs.Bool

	// colour lit pixels in the preview
	Color prefs.Bool

	// glyphs per preview line. zero means fit to the terminal width
	Columns prefs.Int

	// package and variable names for the go format
	GoPackage  prefs.String
	GoVariable prefs.String
}

func (p *Preferences) String() string {
	return p.env.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Preferences have their default values. Load() should be called to set
// them from the environment.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		env: prefs.NewEnv(envPrefix),
	}

	p.Formats.SetHookPre(func(v prefs.Value) error {
		_, err := emit.ParseFormats(v.(string))
		return err
	})
	p.Columns.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("columns cannot be negative (%d)", v.(int))
		}
		return nil
	})
	identifier := func(v prefs.Value) error {
		if !token.IsIdentifier(v.(string)) {
			return fmt.Errorf("not a valid identifier (%s)", v.(string))
		}
		return nil
	}
	p.GoPackage.SetHookPre(identifier)
	p.GoVariable.SetHookPre(identifier)

	p.SetDefaults()

	err := p.env.Add("output.dir", &p.OutputDir)
	if err != nil {
		return nil, err
	}
	err = p.env.Add("output.formats", &p.Formats)
	if err != nil {
		return nil, err
	}
	err = p.env.Add("preview.enabled", &p.Preview)
	if err != nil {
		return nil, err
	}
	err = p.env.Add("preview.code", &p.Code)
	if err != nil {
		return nil, err
	}
	err = p.env.Add("preview.color", &p.Color)
	if err != nil {
		return nil, err
	}
	err = p.env.Add("preview.columns", &p.Columns)
	if err != nil {
		return nil, err
	}
	err = p.env.Add("go.package", &p.GoPackage)
	if err != nil {
		return nil, err
	}
	err = p.env.Add("go.variable", &p.GoVariable)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values. The defaults
// write the header and usage files to the current directory after printing
// the preview and the code.
func (p *Preferences) SetDefaults() {
	// the default values are all valid so errors from the hooks are not
	// possible
	_ = p.OutputDir.Set(".")
	_ = p.Formats.Set("header,usage")
	_ = p.Preview.Set(true)
	_ = p.Code.Set(true)
	_ = p.Color.Set(false)
	_ = p.Columns.Set(1)
	_ = p.GoPackage.Set("font")
	_ = p.GoVariable.Set("HexDigits")
}

// EnvFiles returns the env files that are read by Load() when no files are
// specified. The file in the resource directory is read first so that a .env
// file in the current directory takes precedence.
func EnvFiles() []string {
	return []string{paths.ResourcePath(EnvFile), ".env"}
}

// Load preferences from the env files, the process environment and the prefs
// command line stack. If no files are specified then EnvFiles() is used.
func (p *Preferences) Load(files ...string) error {
	if len(files) == 0 {
		files = EnvFiles()
	}
	return p.env.Load(files...)
}

// Sources returns the env files that contributed to the most recent Load().
func (p *Preferences) Sources() []string {
	return p.env.Sources()
}

// FormatList returns the formats selected by the Formats preference.
func (p *Preferences) FormatList() ([]emit.Format, error) {
	return emit.ParseFormats(p.Formats.String())
}

// EmitOptions returns the options for emit.Emit().
func (p *Preferences) EmitOptions() emit.Options {
	return emit.Options{
		Go: emit.GoOptions{
			Generator: "hexfont",
			Package:   p.GoPackage.String(),
			Variable:  p.GoVariable.String(),
		},
	}
}

// PreviewOptions returns the options for the preview package. If the Columns
// preference is zero and the output is a terminal, the number of columns is
// fitted to the width of the terminal. Otherwise a zero value produces the
// list layout.
func (p *Preferences) PreviewOptions(output io.Writer) preview.Options {
	opts := preview.Options{
		Color:   p.Color.Bool(),
		Columns: p.Columns.Int(),
	}

	if opts.Columns == 0 {
		if f, ok := output.(*os.File); ok {
			if g, err := easyterm.GetGeometry(f); err == nil && g.Cols > 0 {
				opts.Columns = preview.AutoColumns(int(g.Cols))
			}
		}
	}

	return opts
}
