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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different flags
// for each mode.
//
// Rather than calling Parse() with the list of arguments, as with
// flag.FlagSet, the arguments are given to NewArgs() and then Parse() is
// called with no arguments. This allows the same list of arguments to be
// parsed in stages, one stage per mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("GENERATE", "PREVIEW", "MATRIX", "VERIFY", "VERSION")
//	_, _ = md.Parse()
//
// The first sub-mode is the default mode. After Parse() the Mode() function
// returns the selected mode. Sub-mode comparisons are case insensitive and
// modes are always reported in upper case.
//
// Once the mode is known, NewMode() starts a new stage and the flags for
// that mode can be added:
//
//	switch md.Mode() {
//	case "MATRIX":
//		md.NewMode()
//		digit := md.AddInt("digit", -1, "show a single digit")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		showMatrix(*digit, md.RemainingArgs())
//	}
//
// If the arguments for the top level contain a flag that the top level does
// not recognise, the default mode is selected and the flag is left for the
// next stage. This means the default mode's flags can be given without naming
// the mode.
//
// Visited() reports whether a flag was given explicitly on the command line,
// which is useful when flags are layered on top of other configuration.
package modalflag
