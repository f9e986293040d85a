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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/hexfont/prefs"
	"github.com/jetsetilly/hexfont/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("output.dir::fonts")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "output.dir::fonts")

	// surrounding space is trimmed
	prefs.PushCommandLineStack("   output.dir:: fonts ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "output.dir::fonts")

	// remaining pairs are returned in key order
	prefs.PushCommandLineStack("preview.color::false; output.dir::fonts")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "output.dir::fonts; preview.color::false")

	// malformed pairs are ignored
	prefs.PushCommandLineStack("output.dir")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("output.dir;preview.code::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "preview.code::true")

	// a used pref is removed from the group
	prefs.PushCommandLineStack("output.dir::fonts;preview.code::true")
	ok, v := prefs.GetCommandLinePref("output.dir")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "fonts")
	ok, _ = prefs.GetCommandLinePref("output.dir")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "preview.code::true")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("output.dir::fonts")
	prefs.PushCommandLineStack("preview.code::true")

	// only the top group is consulted
	ok, _ := prefs.GetCommandLinePref("output.dir")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "preview.code::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "output.dir::fonts")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
