// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package s3store

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client, err := NewClient(context.Background(), &ClientInput{
		Region:           "us-west-2",
		Endpoint:         "http://localhost:9000",
		UsePathStyle:     true,
		RetryMaxAttempts: 3,
		AccessKeyID:      "AKIAEXAMPLE",
		SecretAccessKey:  "secret",
	})
	require.NoError(t, err)

	options := client.Options()
	assert.Equal(t, "us-west-2", options.Region)
	assert.Equal(t, "http://localhost:9000", aws.ToString(options.BaseEndpoint))
	assert.True(t, options.UsePathStyle)

	credentials, err := options.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIAEXAMPLE", credentials.AccessKeyID)
	assert.Equal(t, "secret", credentials.SecretAccessKey)
}

func TestClientLogMode(t *testing.T) {
	input := &ClientInput{LogClientRequests: true, LogClientRetries: true}
	mode := input.ClientLogMode()
	assert.True(t, mode.IsRequest())
	assert.True(t, mode.IsRetries())
	assert.False(t, mode.IsResponse())
	assert.False(t, mode.IsSigning())
}
