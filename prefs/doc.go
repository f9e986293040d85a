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

// Package prefs facilitates the storage of preferences. Preferences are typed
// values (Bool, String and Int) that can be set from a string and can have
// hooks that are called before and after a new value is set. A hook that
// returns an error before a value is set prevents the value from changing.
//
// The Env type collects preferences under a key and sets them from the
// environment. For example:
//
//	env := prefs.NewEnv("HEXFONT")
//	env.Add("output.dir", &p.OutputDir)
//	env.Load(".env")
//
// The output.dir preference will be set from the HEXFONT_OUTPUT_DIR variable,
// if it exists. Variables are looked for in the files specified in the call to
// Load() and then in the process environment. Values in the process
// environment take precedence over values in files.
//
// Finally, preferences can be set from a string of key/value pairs with the
// command line stack. For example:
//
//	prefs.PushCommandLineStack("output.dir::fonts; preview.color::false")
//	env.Load()
//
// Values on the top of the command line stack take precedence over values
// from the environment. A value is removed from the stack once it has been
// used, so PopCommandLineStack() can be used to find preferences that were
// not recognised.
package prefs
