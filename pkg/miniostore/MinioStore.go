// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package miniostore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/minio/minio-go/v7"

	"github.com/navwar/gobucket/pkg/store"
)

// DefaultMaxKeys is the page size used when the input does not set one.
const DefaultMaxKeys = 1000

// MinioStore implements store.ObjectStore for a single bucket on an S3-compatible service.
//
// minio-go hides listing continuation tokens, so MinioStore uses the last key of a page as
// the continuation token and resumes the next listing after it.
type MinioStore struct {
	client MinioAPI
	bucket string
}

func (s *MinioStore) Bucket() string {
	return s.bucket
}

func (s *MinioStore) CopyObject(ctx context.Context, sourceKey string, destinationKey string) error {
	_, err := s.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: s.bucket, Object: destinationKey},
		minio.CopySrcOptions{Bucket: s.bucket, Object: sourceKey},
	)
	if err != nil {
		return fmt.Errorf("error copying object %q to %q: %w", sourceKey, destinationKey, err)
	}
	return nil
}

// GetObject returns the object with its body as a stream.
func (s *MinioStore) GetObject(ctx context.Context, key string) (*store.Object, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("error getting object %q: %w", key, err)
	}
	// GetObject is lazy, so stat the object to surface missing keys here
	if _, err := object.Stat(); err != nil {
		_ = object.Close()
		return nil, fmt.Errorf("error getting object %q: %w", key, err)
	}
	return &store.Object{
		Key:  key,
		Body: object,
	}, nil
}

func (s *MinioStore) IsNotExist(err error) bool {
	errorResponse := minio.ErrorResponse{}
	if !errors.As(err, &errorResponse) {
		return false
	}
	switch errorResponse.Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return true
	}
	return errorResponse.StatusCode == http.StatusNotFound
}

func (s *MinioStore) ListObjects(ctx context.Context, input *store.ListObjectsInput) (*store.ListObjectsOutput, error) {
	maxKeys := int(input.MaxKeys)
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}

	// cancel stops the background listing once a page is full
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objectInfos := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:     input.Prefix,
		Recursive:  true,
		MaxKeys:    maxKeys,
		StartAfter: input.ContinuationToken,
	})

	output := &store.ListObjectsOutput{
		Objects: make([]store.ObjectReference, 0),
	}
	for objectInfo := range objectInfos {
		if objectInfo.Err != nil {
			return nil, fmt.Errorf("error listing objects with prefix %q: %w", input.Prefix, objectInfo.Err)
		}
		if len(output.Objects) == maxKeys {
			output.IsTruncated = true
			output.NextContinuationToken = output.Objects[len(output.Objects)-1].Key
			break
		}
		output.Objects = append(output.Objects, store.ObjectReference{
			Bucket:       s.bucket,
			Key:          objectInfo.Key,
			Size:         objectInfo.Size,
			LastModified: objectInfo.LastModified,
		})
	}
	return output, nil
}

func (s *MinioStore) PutObject(ctx context.Context, key string, body []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("error putting object %q: %w", key, err)
	}
	return nil
}

func NewMinioStore(client MinioAPI, bucket string) *MinioStore {
	return &MinioStore{
		client: client,
		bucket: bucket,
	}
}

var _ store.ObjectStore = (*MinioStore)(nil)
