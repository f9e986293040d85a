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
	"errors"
	"testing"

	"github.com/jetsetilly/hexfont/prefs"
	"github.com/jetsetilly/hexfont/test"
)

func TestBool(t *testing.T) {
	var b prefs.Bool
	test.ExpectFailure(t, b.Bool())

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, b.Bool())
	test.ExpectEquality(t, b.String(), "true")

	test.ExpectSuccess(t, b.Set(" false"))
	test.ExpectFailure(t, b.Bool())

	test.ExpectFailure(t, b.Set("maybe"))
	test.ExpectFailure(t, b.Set(10))
}

func TestString(t *testing.T) {
	var s prefs.String
	test.ExpectEquality(t, s.String(), "")

	test.ExpectSuccess(t, s.Set("header,usage"))
	test.ExpectEquality(t, s.String(), "header,usage")

	test.ExpectSuccess(t, s.Set(100))
	test.ExpectEquality(t, s.Get().(string), "100")
}

func TestInt(t *testing.T) {
	var i prefs.Int
	test.ExpectEquality(t, i.Int(), 0)

	test.ExpectSuccess(t, i.Set(4))
	test.ExpectEquality(t, i.Int(), 4)
	test.ExpectSuccess(t, i.Set("12 "))
	test.ExpectEquality(t, i.Int(), 12)
	test.ExpectEquality(t, i.String(), "12")

	test.ExpectFailure(t, i.Set("twelve"))
	test.ExpectFailure(t, i.Set(true))
	test.ExpectEquality(t, i.Int(), 12)
}

func TestHooks(t *testing.T) {
	var s prefs.String
	var post string

	s.SetHookPre(func(v prefs.Value) error {
		if v.(string) == "" {
			return errors.New("empty")
		}
		return nil
	})
	s.SetHookPost(func(v prefs.Value) error {
		post = v.(string)
		return nil
	})

	test.ExpectSuccess(t, s.Set("fonts"))
	test.ExpectEquality(t, post, "fonts")

	// pre hook prevents the change
	test.ExpectFailure(t, s.Set(""))
	test.ExpectEquality(t, s.String(), "fonts")
	test.ExpectEquality(t, post, "fonts")
}
