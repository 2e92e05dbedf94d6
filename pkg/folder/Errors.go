// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package folder

import (
	"errors"
)

var (
	ErrKeyOutsidePrefix         = errors.New("key does not begin with prefix")
	ErrMissingContinuationToken = errors.New("listing is truncated but has no continuation token")
	ErrObjectNotFound           = errors.New("object not found")
	ErrSamePrefix               = errors.New("destination prefix overlaps source prefix")
)
