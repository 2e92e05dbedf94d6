// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package store

import (
	"io"
)

// Object is a fetched object.
// Body is one of the representations accepted by body.Bytes.
type Object struct {
	Key  string
	Body any
}

// Close closes the body if it holds an open stream.
func (o *Object) Close() error {
	if c, ok := o.Body.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
