// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package miniostore

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const DefaultEndpoint = "s3.amazonaws.com"

type ClientInput struct {
	Endpoint     string
	Region       string
	UsePathStyle bool
	// Credentials
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// ParseEndpoint splits an endpoint URL into the host minio-go expects and whether to use TLS.
// An endpoint without a scheme uses TLS.
func ParseEndpoint(endpoint string) (string, bool, error) {
	if len(endpoint) == 0 {
		return DefaultEndpoint, true, nil
	}
	if !strings.Contains(endpoint, "://") {
		return strings.TrimSuffix(endpoint, "/"), true, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("error parsing endpoint %q: %w", endpoint, err)
	}
	switch u.Scheme {
	case "https":
		return u.Host, true, nil
	case "http":
		return u.Host, false, nil
	}
	return "", false, fmt.Errorf("unsupported scheme %q in endpoint %q", u.Scheme, endpoint)
}

func NewClient(input *ClientInput) (*minio.Client, error) {
	host, secure, err := ParseEndpoint(input.Endpoint)
	if err != nil {
		return nil, err
	}
	options := &minio.Options{
		Secure: secure,
		Region: input.Region,
	}
	if len(input.AccessKeyID) > 0 && len(input.SecretAccessKey) > 0 {
		options.Creds = credentials.NewStaticV4(input.AccessKeyID, input.SecretAccessKey, input.SessionToken)
	} else {
		options.Creds = credentials.NewEnvAWS()
	}
	if input.UsePathStyle {
		options.BucketLookup = minio.BucketLookupPath
	}
	client, err := minio.New(host, options)
	if err != nil {
		return nil, fmt.Errorf("error creating minio client for %q: %w", host, err)
	}
	return client, nil
}
