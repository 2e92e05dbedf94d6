// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/navwar/gobucket/pkg/store"
)

// S3Store implements store.ObjectStore for a single bucket using the AWS SDK.
type S3Store struct {
	client           S3API
	bucket           string
	acl              types.ObjectCannedACL
	bucketKeyEnabled bool
}

func (s *S3Store) Bucket() string {
	return s.bucket
}

func (s *S3Store) CopyObject(ctx context.Context, sourceKey string, destinationKey string) error {
	input := &s3.CopyObjectInput{
		ACL:        s.acl,
		Bucket:     aws.String(s.bucket),
		Key:        aws.String(destinationKey),
		CopySource: aws.String(fmt.Sprintf("%s/%s", s.bucket, sourceKey)),
	}
	if s.bucketKeyEnabled {
		input.BucketKeyEnabled = aws.Bool(true)
	}
	_, err := s.client.CopyObject(ctx, input)
	if err != nil {
		return fmt.Errorf("error copying object %q to %q: %w", sourceKey, destinationKey, err)
	}
	return nil
}

func (s *S3Store) GetObject(ctx context.Context, key string) (*store.Object, error) {
	getObjectOutput, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error getting object %q: %w", key, err)
	}
	return &store.Object{
		Key:  key,
		Body: getObjectOutput.Body,
	}, nil
}

func (s *S3Store) IsNotExist(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiError smithy.APIError
	if errors.As(err, &apiError) {
		switch apiError.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return true
		}
	}
	var responseError *awshttp.ResponseError
	if errors.As(err, &responseError) {
		if responseError.HTTPStatusCode() == 404 {
			return true
		}
	}
	return false
}

func (s *S3Store) ListObjects(ctx context.Context, input *store.ListObjectsInput) (*store.ListObjectsOutput, error) {
	listObjectsInput := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(input.Prefix),
	}
	if len(input.ContinuationToken) > 0 {
		listObjectsInput.ContinuationToken = aws.String(input.ContinuationToken)
	}
	if input.MaxKeys > 0 {
		listObjectsInput.MaxKeys = aws.Int32(input.MaxKeys)
	}
	listObjectsOutput, err := s.client.ListObjectsV2(ctx, listObjectsInput)
	if err != nil {
		return nil, fmt.Errorf("error listing objects with prefix %q: %w", input.Prefix, err)
	}
	output := &store.ListObjectsOutput{
		Objects:               make([]store.ObjectReference, 0, len(listObjectsOutput.Contents)),
		IsTruncated:           aws.ToBool(listObjectsOutput.IsTruncated),
		NextContinuationToken: aws.ToString(listObjectsOutput.NextContinuationToken),
	}
	for _, object := range listObjectsOutput.Contents {
		if object.Key == nil {
			continue
		}
		output.Objects = append(output.Objects, store.ObjectReference{
			Bucket:       s.bucket,
			Key:          aws.ToString(object.Key),
			Size:         aws.ToInt64(object.Size),
			LastModified: aws.ToTime(object.LastModified),
		})
	}
	return output, nil
}

func (s *S3Store) PutObject(ctx context.Context, key string, body []byte) error {
	// a ReadSeeker lets the client rewind the body when it retries
	reader := bytes.NewReader(body)
	input := &s3.PutObjectInput{
		ACL:           s.acl,
		Body:          reader,
		Bucket:        aws.String(s.bucket),
		ContentLength: aws.Int64(int64(reader.Len())),
		Key:           aws.String(key),
	}
	if s.bucketKeyEnabled {
		input.BucketKeyEnabled = aws.Bool(true)
	}
	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		return fmt.Errorf("error putting object %q: %w", key, err)
	}
	return nil
}

type S3StoreInput struct {
	Client           S3API
	Bucket           string
	ACL              types.ObjectCannedACL // empty leaves the ACL unset
	BucketKeyEnabled bool
}

func NewS3Store(input *S3StoreInput) *S3Store {
	return &S3Store{
		client:           input.Client,
		bucket:           input.Bucket,
		acl:              input.ACL,
		bucketKeyEnabled: input.BucketKeyEnabled,
	}
}

var _ store.ObjectStore = (*S3Store)(nil)
