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
	"io"
)

const chunkSize = 32 * 1024

// ReadStream reads the stream until EOF, checking the context between chunks.
func ReadStream(ctx context.Context, r io.Reader) ([]byte, error) {
	buf := bytes.NewBuffer([]byte{})
	chunk := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.Read(chunk)
		if n > 0 {
			_, _ = buf.Write(chunk[:n])
		}
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
