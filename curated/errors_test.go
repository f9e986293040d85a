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

package curated_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/test"
)

const testPattern = "test: %v"
const wrapPattern = "wrap: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testPattern, e)
	test.ExpectEquality(t, f.Error(), "test: foo")

	// duplicates further down the chain are also dropped
	g := curated.Errorf(wrapPattern, f)
	h := curated.Errorf(wrapPattern, g)
	test.ExpectEquality(t, h.Error(), "wrap: test: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	// Has() should fail because we haven't included testPattern anywhere in
	// the chain
	f := curated.Errorf(wrapPattern, "bar")
	test.ExpectFailure(t, curated.Has(f, testPattern))

	// wrapping e inside f
	f = curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
}

func TestPlainErrors(t *testing.T) {
	e := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Has(e, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))

	f := curated.Errorf(testPattern, e)
	test.ExpectSuccess(t, curated.IsAny(f))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(testPattern, fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, fs.ErrNotExist))

	f := curated.Errorf(testPattern, "no error value")
	test.ExpectFailure(t, errors.Is(f, fs.ErrNotExist))
}
