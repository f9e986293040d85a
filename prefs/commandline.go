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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// separators used in a command line prefs string
const (
	commandLinePairSep  = ";"
	commandLineValueSep = "::"
)

// each group on the stack is the result of one call to PushCommandLineStack()
type commandLineGroup map[string]string

var commandLineStack []commandLineGroup

// PushCommandLineStack parses a prefs string and adds it as a new group. A
// prefs string is a list of key/value pairs separated by semi-colons. Keys are
// separated from values by a double colon. For example:
//
//	output.dir::fonts; preview.color::false
//
// Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	group := make(commandLineGroup)

	for _, p := range strings.Split(prefs, commandLinePairSep) {
		kv := strings.Split(p, commandLineValueSep)
		if len(kv) == 2 {
			group[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the prefs that were not used, in the form of a prefs string with
// keys sorted alphabetically.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s%s%s", key, commandLineValueSep, popped[key]))
	}

	return strings.Join(pairs, commandLinePairSep+" ")
}

// GetCommandLinePref returns the value for the key in the most recent group.
// The value is removed from the group when it is returned.
func GetCommandLinePref(key string) (bool, string) {
	if len(commandLineStack) == 0 {
		return false, ""
	}

	group := commandLineStack[len(commandLineStack)-1]
	if v, ok := group[key]; ok {
		delete(group, key)
		return true, v
	}

	return false, ""
}
