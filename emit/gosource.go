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
	"go/format"
	"go/token"
	"strings"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/font"
)

// GoSourceError is the pattern for all errors returned by GoSource().
const GoSourceError = "emit: go source: %v"

// GoOptions control the Go source produced by GoSource().
type GoOptions struct {
	// the name of the generating program. used in the "Code generated"
	// comment. defaults to "hexfont"
	Generator string

	// name of package. defaults to "font"
	Package string

	// name of the table variable. defaults to "HexDigits"
	Variable string

	// the type of the table. defaults to the unnamed array type [16][8]uint8.
	// a named type must have an underlying type that is the same
	Type string
}

func (opts *GoOptions) defaults() {
	if opts.Generator == "" {
		opts.Generator = "hexfont"
	}
	if opts.Package == "" {
		opts.Package = "font"
	}
	if opts.Variable == "" {
		opts.Variable = "HexDigits"
	}
	if opts.Type == "" {
		opts.Type = fmt.Sprintf("[%d][%d]uint8", font.NumGlyphs, font.Height)
	}
}

// GoSource returns the table as a Go variable declaration in a complete source
// file. The output is formatted with go/format.
func GoSource(t *font.Table, opts GoOptions) ([]byte, error) {
	opts.defaults()

	if !token.IsIdentifier(opts.Package) {
		return nil, curated.Errorf(GoSourceError, fmt.Sprintf("invalid package name (%s)", opts.Package))
	}
	if !token.IsIdentifier(opts.Variable) {
		return nil, curated.Errorf(GoSourceError, fmt.Sprintf("invalid variable name (%s)", opts.Variable))
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("// Code generated by %s. DO NOT EDIT.\n\n", opts.Generator))
	s.WriteString(fmt.Sprintf("package %s\n\n", opts.Package))
	s.WriteString(fmt.Sprintf("// %s is the 6x8 pixel font for the hexadecimal digits 0 to F.\n", opts.Variable))
	s.WriteString(fmt.Sprintf("var %s = %s{\n", opts.Variable, opts.Type))
	for i, g := range t {
		s.WriteString(fmt.Sprintf("// %s\n", font.Label(uint8(i))))
		s.WriteString(fmt.Sprintf("{%s},\n", binaryLiterals(g)))
	}
	s.WriteString("}\n")

	// format code using standard Go formatter
	b, err := format.Source([]byte(s.String()))
	if err != nil {
		return nil, curated.Errorf(GoSourceError, err)
	}

	return b, nil
}
