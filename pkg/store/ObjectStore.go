// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package store

import (
	"context"
)

// ObjectStore is the bucket-scoped object storage client used by the folder operations.
type ObjectStore interface {
	// Bucket returns the name of the bucket all operations target.
	Bucket() string
	// CopyObject issues a server-side copy of sourceKey to destinationKey within the bucket.
	CopyObject(ctx context.Context, sourceKey string, destinationKey string) error
	// GetObject returns the object body in whatever representation the backend produces.
	GetObject(ctx context.Context, key string) (*Object, error)
	// IsNotExist returns true if the error reports a missing object or bucket.
	IsNotExist(err error) bool
	// ListObjects returns one page of objects whose keys begin with the input prefix.
	ListObjects(ctx context.Context, input *ListObjectsInput) (*ListObjectsOutput, error)
	// PutObject stores body at key, overwriting any existing object.
	PutObject(ctx context.Context, key string, body []byte) error
}
