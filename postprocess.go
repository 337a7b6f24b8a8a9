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

const (
	keyIndentStyle = "indent_style"
	keyIndentSize  = "indent_size"
	keyTabWidth    = "tab_width"
	valueTab       = "tab"
)

// postProcess applies the version-gated indent_style/indent_size/tab_width
// cross-defaulting rules, in order A, B, C; each rule observes the map
// state left by the rule before it.
func postProcess(props map[string]string, version Version) {
	atLeastV0_9_0 := version.AtLeast(v0_9_0)

	// Rule A.
	if atLeastV0_9_0 {
		if props[keyIndentStyle] == valueTab {
			if _, ok := props[keyIndentSize]; !ok {
				props[keyIndentSize] = valueTab
			}
		}
	}

	// Rule B.
	if atLeastV0_9_0 {
		if props[keyIndentSize] == valueTab {
			if tabWidth, ok := props[keyTabWidth]; ok {
				props[keyIndentSize] = tabWidth
			}
		}
	}

	// Rule C.
	if indentSize, ok := props[keyIndentSize]; ok {
		if _, hasTabWidth := props[keyTabWidth]; !hasTabWidth {
			if !atLeastV0_9_0 || indentSize != valueTab {
				props[keyTabWidth] = indentSize
			}
		}
	}
}
