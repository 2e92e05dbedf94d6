// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package folder

import (
	"fmt"
	"strings"
)

// ReplacePrefix returns key with the leading oldPrefix replaced by newPrefix.
// A key that does not begin with oldPrefix returns ErrKeyOutsidePrefix.
func ReplacePrefix(key string, oldPrefix string, newPrefix string) (string, error) {
	if !strings.HasPrefix(key, oldPrefix) {
		return "", fmt.Errorf("%w: key %q, prefix %q", ErrKeyOutsidePrefix, key, oldPrefix)
	}
	return newPrefix + key[len(oldPrefix):], nil
}
