// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package store

type ListObjectsOutput struct {
	Objects               []ObjectReference
	IsTruncated           bool
	NextContinuationToken string
}

// Keys returns the keys of the listed objects in listing order.
func (o *ListObjectsOutput) Keys() []string {
	keys := make([]string, 0, len(o.Objects))
	for _, object := range o.Objects {
		keys = append(keys, object.Key)
	}
	return keys
}
