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

// Package fontgen runs the font generation pipeline. Generate() validates the
// font table, prints the preview and the header code, and writes each of the
// selected output formats to the output directory.
//
// The behaviour of the pipeline is controlled by the Preferences type. The
// preferences can be set by env files, by the process environment and by the
// prefs command line stack:
//
//	output.dir       HEXFONT_OUTPUT_DIR
//	output.formats   HEXFONT_OUTPUT_FORMATS
//	preview.enabled  HEXFONT_PREVIEW_ENABLED
//	preview.code     HEXFONT_PREVIEW_CODE
//	preview.color    HEXFONT_PREVIEW_COLOR
//	preview.columns  HEXFONT_PREVIEW_COLUMNS
//	go.package       HEXFONT_GO_PACKAGE
//	go.variable      HEXFONT_GO_VARIABLE
//
// Verify() compares a previously emitted header file with a font table.
package fontgen
