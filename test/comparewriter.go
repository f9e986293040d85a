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

package test

import "strings"

// CompareWriter captures output so that it can be compared with an expected
// string. It implements the io.Writer and fmt.Stringer interfaces.
//
// A CompareWriter must not be copied after it has been written to.
type CompareWriter struct {
	strings.Builder
}

// Clear the captured output.
func (tw *CompareWriter) Clear() {
	tw.Reset()
}

// Compare the captured output with s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.String() == s
}
