// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package body

import (
	"context"
	"fmt"
	"io"
)

// ReadBlob reads the full contents of the blob starting at offset zero.
func ReadBlob(ctx context.Context, b Blob) ([]byte, error) {
	size := b.Size()
	if size < 0 {
		return nil, fmt.Errorf("invalid blob size %d", size)
	}
	data := make([]byte, size)
	for offset := int64(0); offset < size; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := offset + chunkSize
		if end > size {
			end = size
		}
		n, err := b.ReadAt(data[offset:end], offset)
		offset += int64(n)
		if err != nil {
			if err == io.EOF && offset == size {
				break
			}
			if err == io.EOF {
				return nil, fmt.Errorf("blob ended at %d of %d bytes: %w", offset, size, io.ErrUnexpectedEOF)
			}
			return nil, err
		}
	}
	return data, nil
}
