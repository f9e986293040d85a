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

package logger

// Permission decides whether a log request creates an entry. The caller of
// Log() or Logf() passes the Permission that applies in its context.
type Permission interface {
	AllowLogging() bool
}

// permission that never changes
type constant bool

func (c constant) AllowLogging() bool {
	return bool(c)
}

// Allow is the Permission for log entries that should always be made.
var Allow Permission = constant(true)
