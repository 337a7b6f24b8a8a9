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
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("0.17.2")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 0, Minor: 17, Patch: 2}, v)
}

func TestParseVersionInvalid(t *testing.T) {
	_, err := ParseVersion("0.17")
	assert.Error(t, err)

	_, err = ParseVersion("a.b.c")
	assert.Error(t, err)
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "0.17.2", MaxVersion.String())
}

func TestVersionCompare(t *testing.T) {
	assert.Equal(t, 0, MaxVersion.Compare(MaxVersion))
	assert.Equal(t, 1, MaxVersion.Compare(Version{Major: 0, Minor: 9, Patch: 0}))
	assert.Equal(t, -1, Version{Major: 0, Minor: 8}.Compare(v0_9_0))

	assert.True(t, MaxVersion.AtLeast(v0_9_0))
	assert.False(t, Version{Major: 0, Minor: 8}.AtLeast(v0_9_0))
}
