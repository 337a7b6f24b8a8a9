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
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version identifies the EditorConfig spec revision an Options value
// targets. Only the post-processor consults it.
type Version struct {
	Major, Minor, Patch uint32
}

// MaxVersion is the highest spec revision this implementation understands
// and the default used when Options omits a version.
var MaxVersion = Version{Major: 0, Minor: 17, Patch: 2}

// v0_9_0 is the threshold at which the post-processor's indent_style and
// indent_size cross-defaulting rules come into effect.
var v0_9_0 = Version{Major: 0, Minor: 9, Patch: 0}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater
// than other, comparing major, then minor, then patch.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return cmpUint32(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpUint32(v.Minor, other.Minor)
	default:
		return cmpUint32(v.Patch, other.Patch)
	}
}

func cmpUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether v is greater than or equal to other.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}

// ParseVersion parses a "major.minor.patch" string, e.g. "0.17.2".
func ParseVersion(s string) (Version, error) {
	segs := strings.SplitN(s, ".", 3)
	if len(segs) != 3 {
		return Version{}, errors.New("editorconfig: version must have three dot-separated segments")
	}

	nums := make([]uint32, 3)
	for i, seg := range segs {
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return Version{}, errors.Wrap(err, "editorconfig: version segments must be unsigned integers")
		}
		nums[i] = uint32(n)
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}
