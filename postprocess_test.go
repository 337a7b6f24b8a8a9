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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostProcessTabCrossDefault(t *testing.T) {
	props := map[string]string{
		"indent_style": "tab",
		"tab_width":    "8",
	}
	postProcess(props, MaxVersion)

	assert.Equal(t, "tab", props["indent_style"])
	assert.Equal(t, "8", props["indent_size"])
	assert.Equal(t, "8", props["tab_width"])
}

func TestPostProcessRuleAWithoutTabWidth(t *testing.T) {
	props := map[string]string{"indent_style": "tab"}
	postProcess(props, MaxVersion)

	assert.Equal(t, "tab", props["indent_size"])
	_, hasTabWidth := props["tab_width"]
	assert.False(t, hasTabWidth)
}

func TestPostProcessRuleCDerivesTabWidth(t *testing.T) {
	props := map[string]string{"indent_size": "4"}
	postProcess(props, MaxVersion)

	assert.Equal(t, "4", props["tab_width"])
}

func TestPostProcessRuleCSkipsWhenIndentSizeIsTab(t *testing.T) {
	props := map[string]string{"indent_size": "tab"}
	postProcess(props, MaxVersion)

	_, ok := props["tab_width"]
	assert.False(t, ok)
}

func TestPostProcessPreV0_9_0SkipsRulesAAndB(t *testing.T) {
	old := Version{Major: 0, Minor: 8, Patch: 0}
	props := map[string]string{"indent_style": "tab"}
	postProcess(props, old)

	_, hasIndentSize := props["indent_size"]
	assert.False(t, hasIndentSize)
}

func TestPostProcessPreV0_9_0RuleCAppliesEvenWhenIndentSizeIsTab(t *testing.T) {
	old := Version{Major: 0, Minor: 8, Patch: 0}
	props := map[string]string{"indent_size": "tab"}
	postProcess(props, old)

	assert.Equal(t, "tab", props["tab_width"])
}

func TestPostProcessDoesNotOverwriteExistingTabWidth(t *testing.T) {
	props := map[string]string{
		"indent_size": "4",
		"tab_width":   "2",
	}
	postProcess(props, MaxVersion)

	assert.Equal(t, "2", props["tab_width"])
}
