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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jetsetilly/hexfont/curated"
	"github.com/jetsetilly/hexfont/logger"
)

// Sentinal error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	LoadError    = "prefs: %s: %v"
)

// Env is a collection of preferences that can be set from environment
// variables. The variable name for each preference is derived from its key.
type Env struct {
	prefix  string
	entries map[string]pref

	// the files that contributed to the most recent call to Load()
	sources []string
}

// NewEnv is the preferred method of initialisation for the Env type. The
// prefix is prepended to the variable name of every preference.
func NewEnv(prefix string) *Env {
	return &Env{
		prefix:  prefix,
		entries: make(map[string]pref),
	}
}

// Add a preference to the collection. Keys are case sensitive and must be
// unique.
func (env *Env) Add(key string, p pref) error {
	if _, ok := env.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	env.entries[key] = p
	return nil
}

// Variable returns the name of the environment variable for a key. Dots and
// dashes are replaced with underscores and the name is upper case. For
// example, with a prefix of "HEXFONT", the key "output.dir" becomes
// HEXFONT_OUTPUT_DIR.
func (env *Env) Variable(key string) string {
	v := strings.NewReplacer(".", "_", "-", "_").Replace(key)
	if env.prefix != "" {
		v = env.prefix + "_" + v
	}
	return strings.ToUpper(v)
}

// Load sets preferences from the env files, the process environment and the
// command line stack, in that order of precedence from lowest to highest. Env
// files that do not exist are skipped. Later files take precedence over
// earlier files.
func (env *Env) Load(files ...string) error {
	env.sources = env.sources[:0]

	vars := make(map[string]string)
	for _, f := range files {
		m, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return curated.Errorf(LoadError, f, err)
		}
		for k, v := range m {
			vars[k] = v
		}
		env.sources = append(env.sources, f)
		logger.Logf(logger.Allow, "prefs", "read %d variables from %s", len(m), f)
	}

	for _, key := range env.keys() {
		p := env.entries[key]
		name := env.Variable(key)

		v, ok := vars[name]
		if ev, eok := os.LookupEnv(name); eok {
			v = ev
			ok = true
		}
		if clok, clv := GetCommandLinePref(key); clok {
			v = clv
			ok = true
		}

		if ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(LoadError, key, err)
			}
		}
	}

	return nil
}

// Sources returns the env files that were read by the most recent call to
// Load().
func (env *Env) Sources() []string {
	return env.sources
}

// keys returns the keys in the collection in alphabetical order.
func (env *Env) keys() []string {
	keys := make([]string, 0, len(env.entries))
	for k := range env.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns every preference in the collection as a list of key/value
// pairs, one per line, sorted by key.
func (env *Env) String() string {
	s := strings.Builder{}
	for _, k := range env.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, env.entries[k]))
	}
	return s.String()
}
