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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by
// Errorf() with a specific pattern. Packages that return curated errors
// export their patterns as constants so that callers can test for them. For
// example, the font package exports:
//
//	const InvalidNibble = "font: invalid nibble (%d)"
//
// and a caller can check for it with:
//
//	_, err := font.Lookup(16)
//	if curated.Is(err, font.InvalidNibble) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("generate: %v", err)
//
//	if curated.Has(e, font.InvalidNibble) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of curated errors as 'expected' errors
// and uncurated errors as 'unexpected' errors.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. So a "generate" error wrapping another "generate"
// error will print as:
//
//	generate: cannot write font_6x8.h
//
// and not:
//
//	generate: generate: cannot write font_6x8.h
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
