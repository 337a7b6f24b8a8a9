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

// Package editorconfig resolves the set of EditorConfig properties that
// apply to a file path, by cascading .editorconfig files discovered
// along the path's ancestor directories. It targets version 0.17.2 of
// the EditorConfig specification.
//
// The library does not parse property values into domain types; it
// returns a map of lowercase string keys to string values, exactly as
// the matching EditorConfig sections declared them (modulo the
// case-normalization the spec requires of six "supported" keys). It
// performs no caching across calls and retains no state between them.
package editorconfig

// Properties returns the EditorConfig properties that apply to path,
// using DefaultOptions. path does not need to exist.
func Properties(path string) (map[string]string, error) {
	return PropertiesWithOptions(path, DefaultOptions())
}

// PropertiesWithOptions returns the EditorConfig properties that apply
// to path under the given Options. path does not need to exist.
//
// Properties are discovered by walking path's ancestor directories from
// the filesystem root down to path's immediate parent, reading
// options.FileName in each if present, and accumulating property values
// from every section whose glob header matches path. A deeper
// "root = true" preamble entry discards every property contributed by
// shallower files. The result is then normalized by the post-processor
// (indent_size/tab_width cross-defaulting) before being returned.
func PropertiesWithOptions(path string, options Options) (map[string]string, error) {
	return propertiesWithOptions(path, options)
}
