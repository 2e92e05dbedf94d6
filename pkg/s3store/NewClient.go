// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package s3store

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/logging"
)

const DefaultRegion = "us-east-1"

type ClientInput struct {
	Profile string
	Region  string
	// AWS Client
	Endpoint           string
	InsecureSkipVerify bool
	RetryMaxAttempts   int
	UsePathStyle       bool
	// AWS Credentials
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	// Client Log Mode
	Logger             logging.Logger
	LogClientSigning   bool
	LogClientRetries   bool
	LogClientRequests  bool
	LogClientResponses bool
}

// ClientLogMode returns the SDK log mode selected by the input.
func (input *ClientInput) ClientLogMode() aws.ClientLogMode {
	clientLogMode := aws.ClientLogMode(0)
	if input.LogClientSigning {
		clientLogMode |= aws.LogSigning
	}
	if input.LogClientRetries {
		clientLogMode |= aws.LogRetries
	}
	if input.LogClientRequests {
		clientLogMode |= aws.LogRequest
	}
	if input.LogClientResponses {
		clientLogMode |= aws.LogResponse
	}
	return clientLogMode
}

// NewClient creates an S3 client.
// Static credentials are used when both the access key id and secret access key are set,
// otherwise the default credential chain for the profile applies.
func NewClient(ctx context.Context, input *ClientInput) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithClientLogMode(input.ClientLogMode()),
	}

	if len(input.Region) > 0 {
		opts = append(opts, config.WithRegion(input.Region))
	}

	if input.RetryMaxAttempts > 0 {
		opts = append(opts, config.WithRetryMaxAttempts(input.RetryMaxAttempts))
	}

	if input.Logger != nil {
		opts = append(opts, config.WithLogger(input.Logger))
	}

	if len(input.AccessKeyID) > 0 && len(input.SecretAccessKey) > 0 {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			input.AccessKeyID,
			input.SecretAccessKey,
			input.SessionToken)))
	} else if len(input.Profile) > 0 && input.Profile != "default" {
		opts = append(opts, config.WithSharedConfigProfile(input.Profile))
	}

	if input.InsecureSkipVerify {
		opts = append(opts, config.WithHTTPClient(&http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true,
				},
			},
		}))
	}

	c, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS configuration: %w", err)
	}

	if len(c.Region) == 0 {
		c.Region = DefaultRegion
	}

	client := s3.NewFromConfig(c, func(o *s3.Options) {
		o.UsePathStyle = input.UsePathStyle
		if len(input.Endpoint) > 0 {
			o.BaseEndpoint = aws.String(input.Endpoint)
		}
	})

	return client, nil
}
