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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/font"
	"github.com/jetsetilly/hexfont/fontgen"
	"github.com/jetsetilly/hexfont/logger"
	"github.com/jetsetilly/hexfont/matrix"
	"github.com/jetsetilly/hexfont/modalflag"
	"github.com/jetsetilly/hexfont/prefs"
	"github.com/jetsetilly/hexfont/preview"
	"github.com/jetsetilly/hexfont/render"
	"github.com/jetsetilly/hexfont/version"
)

// errors that are the result of how the program was invoked, rather than of
// what the mode was asked to do. these result in exit code 10
const usageError = "usage: %v"

// verifyFailed is returned by the VERIFY mode if the header does not match
// the built-in font.
const verifyFailed = "verify: %s differs from the built-in font in %d rows"

// exit codes
const (
	exitOK        = 0
	exitArguments = 10
	exitMode      = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch runs the program with the arguments and returns the exit code.
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("GENERATE", "PREVIEW", "MATRIX", "VERIFY", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "GENERATE":
		err = generate(md, stdout, stderr)

	case "PREVIEW":
		err = previewMode(md, stdout, stderr)

	case "MATRIX":
		err = matrixMode(md, stdout)

	case "VERIFY":
		err = verify(md, stdout)

	case "VERSION":
		err = showVersion(md, stdout)
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.String(), err)
		if curated.Is(err, usageError) {
			return exitArguments
		}
		return exitMode
	}

	return exitOK
}

// parse the arguments for the current mode. the ParseHelp result is returned
// as true
func parse(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return true, nil
	case modalflag.ParseError:
		return false, curated.Errorf(usageError, err)
	}
	return false, nil
}

// setEcho sets the log echo.
func setEcho(echo bool, stderr io.Writer) {
	if echo {
		logger.SetEcho(stderr)
	} else {
		logger.SetEcho(nil)
	}
}

// loadPreferences creates the font generation preferences and loads them from
// the environment. The prefs string is pushed to the command line stack for
// the duration of the load.
func loadPreferences(prefsString string) (*fontgen.Preferences, error) {
	p, err := fontgen.NewPreferences()
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(prefsString)
	err = p.Load()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "hexfont", "unused prefs: %s", unused)
	}
	if err != nil {
		return nil, err
	}

	for _, s := range p.Sources() {
		logger.Logf(logger.Allow, "hexfont", "preferences loaded from %s", s)
	}

	return p, nil
}

// setFlag sets the preference to the value of the flag if the flag was
// specified on the command line.
func setFlag(md *modalflag.Modes, name string, pref interface{ Set(prefs.Value) error }, value prefs.Value) error {
	if !md.Visited(name) {
		return nil
	}
	if err := pref.Set(value); err != nil {
		return curated.Errorf(usageError, fmt.Sprintf("-%s: %v", name, err))
	}
	return nil
}

func generate(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()

	out := md.AddString("out", ".", "output directory")
	formats := md.AddString("formats", "header,usage", "output formats: header, usage, bdf, go or all")
	prv := md.AddBool("preview", true, "print the preview of each glyph")
	code := md.AddBool("code", true, "print the header code")
	color := md.AddBool("color", false, "colour the preview")
	columns := md.AddInt("columns", 1, "glyphs per preview line (0 to fit the terminal)")
	log := md.AddBool("log", false, "echo the log to stderr")
	prefsString := md.AddString("prefs", "", "preferences (key::value; key::value)")

	md.AdditionalHelp("preferences can also be set in .env files or with HEXFONT_ environment\n" +
		"variables. for example, HEXFONT_OUTPUT_DIR sets the output.dir preference")

	if help, err := parse(md); help || err != nil {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(usageError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	setEcho(*log, stderr)

	p, err := loadPreferences(*prefsString)
	if err != nil {
		return err
	}

	for _, err := range []error{
		setFlag(md, "out", &p.OutputDir, *out),
		setFlag(md, "formats", &p.Formats, *formats),
		setFlag(md, "preview", &p.Preview, *prv),
		setFlag(md, "code", &p.Code, *code),
		setFlag(md, "color", &p.Color, *color),
		setFlag(md, "columns", &p.Columns, *columns),
	} {
		if err != nil {
			return err
		}
	}

	_, err = fontgen.Generate(stdout, &font.HexDigits, p)
	return err
}

func previewMode(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()

	braille := md.AddBool("braille", false, "render a specimen of the font as braille")
	color := md.AddBool("color", false, "colour the preview")
	columns := md.AddInt("columns", 1, "glyphs per line (0 to fit the terminal)")
	log := md.AddBool("log", false, "echo the log to stderr")
	prefsString := md.AddString("prefs", "", "preferences (key::value; key::value)")

	if help, err := parse(md); help || err != nil {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(usageError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	setEcho(*log, stderr)

	p, err := loadPreferences(*prefsString)
	if err != nil {
		return err
	}

	if *braille {
		return preview.Braille(stdout, &font.HexDigits, render.SpecimenText)
	}

	err = setFlag(md, "color", &p.Color, *color)
	if err != nil {
		return err
	}
	err = setFlag(md, "columns", &p.Columns, *columns)
	if err != nil {
		return err
	}

	preview.Table(stdout, &font.HexDigits, p.PreviewOptions(stdout))

	return nil
}

// parseValue parses a byte value for the MATRIX mode. The value is always
// hexadecimal, with or without the 0x prefix.
func parseValue(s string) (uint8, error) {
	h := strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(h, 16, 8)
	if err != nil {
		return 0, curated.Errorf(usageError, fmt.Sprintf("value must be a hexadecimal byte (%s)", s))
	}
	return uint8(v), nil
}

func matrixMode(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	digit := md.AddInt("digit", -1, "show a single digit (0 to 15) rather than a byte value")
	col := md.AddInt("col", 0, "start column of the single digit (0 to 11)")
	color := md.AddBool("color", false, "colour the matrix")

	md.AdditionalHelp("the byte value is given in hexadecimal, for example: hexfont matrix A5")

	if help, err := parse(md); help || err != nil {
		return err
	}

	var b matrix.Bitmap

	if md.Visited("digit") {
		if len(md.RemainingArgs()) > 0 {
			return curated.Errorf(usageError, fmt.Sprintf("too many arguments for %s mode", md))
		}
		if *digit < 0 || *digit >= font.NumGlyphs {
			return curated.Errorf(matrix.InvalidDigit, *digit)
		}

		var err error
		b, err = matrix.HexDigit(uint8(*digit), *col)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "digit %s at column %d\n", font.Label(uint8(*digit)), *col)
	} else {
		switch len(md.RemainingArgs()) {
		case 0:
			return curated.Errorf(usageError, fmt.Sprintf("value required for %s mode", md))
		case 1:
			v, err := parseValue(md.GetArg(0))
			if err != nil {
				return err
			}
			b = matrix.TwoHexDigits(v)
			fmt.Fprintf(stdout, "value 0x%02X\n", v)
		default:
			return curated.Errorf(usageError, fmt.Sprintf("too many arguments for %s mode", md))
		}
	}

	preview.Matrix(stdout, &b, preview.Options{Color: *color})

	return nil
}

func verify(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	if help, err := parse(md); help || err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(usageError, fmt.Sprintf("header file required for %s mode", md))
	case 1:
	default:
		return curated.Errorf(usageError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	fn := md.GetArg(0)
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	mismatches, err := fontgen.Verify(f, &font.HexDigits)
	if err != nil {
		return err
	}

	for _, m := range mismatches {
		fmt.Fprintln(stdout, m)
	}
	if len(mismatches) > 0 {
		return curated.Errorf(verifyFailed, fn, len(mismatches))
	}

	fmt.Fprintf(stdout, "✓ %s matches the built-in font\n", fn)

	return nil
}

func showVersion(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	if help, err := parse(md); help || err != nil {
		return err
	}

	fmt.Fprintln(stdout, version.String())

	return nil
}
