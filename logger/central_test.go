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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/hexfont/logger"
	"github.com/jetsetilly/hexfont/test"
)

func TestCentral(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	echo := &test.CompareWriter{}
	logger.SetEcho(echo)
	defer logger.SetEcho(nil)

	logger.Log(logger.Allow, "fontgen", "wrote font_6x8.h")
	logger.Logf(logger.Allow, "fontgen", "wrote %s", "example_usage.txt")
	test.ExpectSuccess(t, echo.Compare("fontgen: wrote font_6x8.h\nfontgen: wrote example_usage.txt\n"), echo.String())

	w := &test.CompareWriter{}
	logger.Tail(w, 1)
	test.ExpectSuccess(t, w.Compare("fontgen: wrote example_usage.txt\n"), w.String())

	logger.Clear()
	w.Clear()
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}
