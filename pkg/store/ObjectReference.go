// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package store

import (
	"time"
)

// ObjectReference identifies a stored object by bucket and key.
type ObjectReference struct {
	Bucket       string
	Key          string
	Size         int64
	LastModified time.Time
}

