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

// Package logger is the central log for hexfont. Log entries are made with a
// tag and a detail. For example:
//
//	logger.Log(logger.Allow, "generate", "font_6x8.h written")
//
// The detail argument can be a string, an error or a fmt.Stringer. Anything
// else is formatted with the %v verb. The Logf() function meanwhile takes a
// pattern and arguments in the same way as fmt.Printf().
//
// Identical adjacent entries are collapsed into one entry with a repeat count.
// The log is bounded and the oldest entries are dropped when it fills.
//
// Entries are only made if the Permission argument allows it. The Allow value
// can be used when an entry should always be made.
//
// By default nothing is printed. SetEcho() will cause new entries to be
// written to the specified io.Writer as they are made.
package logger
