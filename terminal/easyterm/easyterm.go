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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/hexfont/curated"
)

// GeometryError is returned by GetGeometry() if the dimensions of the terminal
// can not be retrieved.
const GeometryError = "easyterm: cannot get terminal geometry: %v"

// Geometry contains the dimensions of a terminal (usually the output terminal)
type Geometry struct {
	// characters
	Rows uint16
	Cols uint16

	// pixels. often zero because many terminals do not report these values
	X uint16
	Y uint16
}

// IsTerminal returns true if the file is connected to a terminal. A file
// is considered to be a terminal if its attributes can be retrieved.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}

// GetGeometry gets the current dimensions (in characters and pixels) of the
// terminal connected to the file.
func GetGeometry(f *os.File) (Geometry, error) {
	if !IsTerminal(f) {
		return Geometry{}, curated.Errorf(GeometryError, "not a terminal")
	}

	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Geometry{}, curated.Errorf(GeometryError, err)
	}

	return Geometry{
		Rows: ws.Row,
		Cols: ws.Col,
		X:    ws.Xpixel,
		Y:    ws.Ypixel,
	}, nil
}
