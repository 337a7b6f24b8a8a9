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

// DefaultFileName is the EditorConfig file name looked for in each
// ancestor directory when Options.FileName is left empty.
const DefaultFileName = ".editorconfig"

// Options configures a single properties lookup.
type Options struct {
	// FileName is the file name to look for in each ancestor directory.
	// Zero value means DefaultFileName.
	FileName string
	// Version is the effective spec version; it influences only the
	// indent_style/indent_size/tab_width cross-defaulting rules applied
	// after the cascade. Zero value means MaxVersion.
	Version Version
}

// DefaultOptions returns the Options used by Properties: file name
// ".editorconfig", version MaxVersion.
func DefaultOptions() Options {
	return Options{FileName: DefaultFileName, Version: MaxVersion}
}

// resolved fills in zero-valued fields with their defaults.
func (o Options) resolved() Options {
	if o.FileName == "" {
		o.FileName = DefaultFileName
	}
	if (o.Version == Version{}) {
		o.Version = MaxVersion
	}
	return o
}
