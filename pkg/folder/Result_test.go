// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package folder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultStatus(t *testing.T) {
	r := newResult("copy", "a/", "b/")
	assert.Equal(t, StatusSuccess, r.Status())
	assert.NoError(t, r.Err())

	r.addFailure("a/1", errors.New("first"))
	assert.Equal(t, StatusFailure, r.Status())

	r.addTransfer(Transfer{Source: "a/2", Destination: "b/2"})
	assert.Equal(t, StatusPartialFailure, r.Status())
}

func TestResultErr(t *testing.T) {
	cause := errors.New("cause")
	r := newResult("fetch", "a/", "/out")
	r.addFailure("a/1", cause)
	r.addFailure("", errors.New("listing"))

	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "a/1: cause")
	assert.Contains(t, err.Error(), "listing")
}

func TestResultFields(t *testing.T) {
	r := newResult("fetch", "a/", "/out")
	r.addPage()
	r.addSkipped("a/")
	r.addTransfer(Transfer{Source: "a/1", Destination: "/out/1", Size: 1})
	fields := r.Fields()
	assert.Equal(t, "fetch", fields["operation"])
	assert.Equal(t, StatusSuccess, fields["status"])
	assert.Equal(t, 1, fields["transferred"])
	assert.Equal(t, 1, fields["skipped"])
	assert.Equal(t, 1, fields["pages"])
}

func TestReplacePrefix(t *testing.T) {
	key, err := ReplacePrefix("a/x/y.txt", "a/", "b/")
	require.NoError(t, err)
	assert.Equal(t, "b/x/y.txt", key)

	key, err = ReplacePrefix("a/a/a.txt", "a/", "b/")
	require.NoError(t, err)
	assert.Equal(t, "b/a/a.txt", key)

	key, err = ReplacePrefix("a/x", "a/", "")
	require.NoError(t, err)
	assert.Equal(t, "x", key)

	_, err = ReplacePrefix("c/a/x", "a/", "b/")
	assert.True(t, errors.Is(err, ErrKeyOutsidePrefix))
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(&ClientInput{Store: newFakeStore()})
	assert.Equal(t, DefaultMaxThreads, c.maxThreads)
	assert.Equal(t, int32(DefaultMaxKeys), c.maxKeys)
	assert.NotNil(t, c.fs)
	assert.NotNil(t, c.logger)

	c = NewClient(&ClientInput{Store: newFakeStore(), MaxThreads: -1})
	assert.Greater(t, c.maxThreads, 0)
}
