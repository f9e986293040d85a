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

// Package paths prepares paths to hexfont resources and output files.
//
// The ResourcePath() function prepends the resource with the appropriate
// config directory. For example, the following returns the path to the
// hexfont env file.
//
//	p := paths.ResourcePath("hexfont.env")
//
// If a directory called ".hexfont" is present in the current directory then
// that is the base path. Otherwise the "hexfont" directory in the user's
// config directory, as reported by os.UserConfigDir(), is used. On a modern
// Linux system the example above will return:
//
//	/home/user/.config/hexfont/hexfont.env
//
// OutputPath() joins an output directory and a filename, creating the
// directory if required.
package paths
