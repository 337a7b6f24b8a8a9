// Copyright 2024 The editorconfig-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package editorconfig

import (
	"bufio"
	"os"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const unsetValue = "unset"

// supportedKeys are the properties whose values are also lowercased on
// storage.
var supportedKeys = map[string]bool{
	"end_of_line":              true,
	"indent_style":             true,
	"indent_size":              true,
	"insert_final_newline":     true,
	"trim_trailing_whitespace": true,
	"charset":                  true,
}

// propertiesWithOptions implements the cascading resolver: it walks
// target's ancestor directories from the filesystem root down to
// target's immediate parent, accumulating properties from each
// EditorConfig file found, then runs the post-processor.
func propertiesWithOptions(target string, opts Options) (map[string]string, error) {
	opts = opts.resolved()

	normalizedTarget, err := normalizePath(target)
	if err != nil {
		return nil, err
	}

	props := make(map[string]string)

	for _, dir := range ancestorDirs(normalizedTarget) {
		if err := applyDir(dir, normalizedTarget, opts, props); err != nil {
			return nil, err
		}
	}

	postProcess(props, opts.Version)

	// Defensive: "unset" must never survive as a key. insertPair already
	// removes a property when its *value* is "unset"; this final pass
	// only guards against a property literally named "unset".
	delete(props, unsetValue)

	return props, nil
}

// normalizePath validates that p is valid UTF-8 and rewrites Windows
// backslashes to forward slashes.
func normalizePath(p string) (string, error) {
	if !utf8.ValidString(p) {
		return "", newError(KindInvalidPath, nil)
	}
	return strings.ReplaceAll(p, `\`, "/"), nil
}

// ancestorDirs returns the ancestor directories of target, ordered from
// the filesystem root down to target's immediate parent.
func ancestorDirs(target string) []string {
	var dirs []string
	dir := path.Dir(target)
	for {
		dirs = append(dirs, dir)
		parent := path.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

// applyDir opens dir/opts.FileName, if present, and folds its matching
// sections into props. A missing file is not an error.
func applyDir(dir, normalizedTarget string, opts Options, props map[string]string) error {
	f, err := os.Open(path.Join(dir, opts.FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return newError(KindIO, errors.Wrapf(err, "open %s", path.Join(dir, opts.FileName)))
	}
	defer f.Close()

	ecDir := dir
	if ecDir == "/" {
		// The root directory has no literal prefix to anchor against;
		// the leading '/' is supplied by compile (".*/" when the pattern
		// has no slash, "/" when its slash is not leading) or by the
		// pattern's own leading '/'.
		ecDir = ""
	}

	var sectionMatchesFile *bool

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		l := classifyLine(scanner.Text())

		switch l.kind {
		case lineSection:
			m, err := compile(ecDir, l.pattern)
			if err != nil {
				return newError(KindParse, err)
			}
			matched := m.isMatch(normalizedTarget)
			sectionMatchesFile = &matched
		case linePair:
			switch {
			case sectionMatchesFile != nil && *sectionMatchesFile:
				insertPair(props, l.key, l.value)
			case sectionMatchesFile == nil:
				if strings.EqualFold(l.key, "root") && strings.EqualFold(l.value, "true") {
					// A root file discards every contribution from
					// shallower EditorConfig files; the cascade walks
					// root-to-leaf, so deeper root=true markers must
					// reset whatever came before them.
					for k := range props {
						delete(props, k)
					}
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return newError(KindIO, errors.Wrap(err, "read editorconfig file"))
	}

	return nil
}

// insertPair stores key (lowercased) and, for the six supported keys,
// value lowercased too. A value of "unset" (case-insensitive) removes
// any previously accumulated value for key instead of storing it.
func insertPair(props map[string]string, key, value string) {
	key = strings.ToLower(key)

	if strings.EqualFold(value, unsetValue) {
		delete(props, key)
		return
	}

	if supportedKeys[key] {
		value = strings.ToLower(value)
	}
	props[key] = value
}
