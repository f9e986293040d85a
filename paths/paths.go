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

package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/hexfont/curated"
)

// Sentinal error patterns.
const (
	OutputDirError = "paths: cannot prepare output directory: %v"
)

// the base path for all resources. getBasePath() should be used rather than
// this value directly.
const baseResourcePath = ".hexfont"

// ResourcePath returns the resource path prepended with the base resource
// path. Empty path elements are ignored.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// getBasePath returns baseResourcePath if it exists in the current directory.
// If not then the location in the user's config directory is returned. The
// existence of the returned path is not checked.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cnf, baseResourcePath[1:])
}

// OutputPath returns the path for an output file in the output directory. The
// directory and any missing parents are created. An empty directory means the
// current directory.
func OutputPath(dir string, filename string) (string, error) {
	if dir == "" || dir == "." {
		return filename, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", curated.Errorf(OutputDirError, err)
	}

	return filepath.Join(dir, filename), nil
}
