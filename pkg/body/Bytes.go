// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package body

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedBody is returned when a body matches none of the known representations.
var ErrUnsupportedBody = errors.New("unsupported body representation")

// Blob is a sized, randomly addressable body, such as a *bytes.Reader.
type Blob interface {
	io.ReaderAt
	Size() int64
}

// Bytes normalizes a response body into a single byte slice.
// Supported representations are *bytes.Buffer, string, []byte, Blob, and io.Reader.
// Buffers and byte slices are returned without copying.
func Bytes(ctx context.Context, b any) ([]byte, error) {
	switch v := b.(type) {
	case *bytes.Buffer:
		if v == nil {
			return nil, fmt.Errorf("%w: nil buffer", ErrUnsupportedBody)
		}
		return v.Bytes(), nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case Blob:
		return ReadBlob(ctx, v)
	case io.Reader:
		return ReadStream(ctx, v)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedBody, b)
}
