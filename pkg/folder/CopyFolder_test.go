// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package folder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFolderEmpty(t *testing.T) {
	s := newFakeStore()
	result, err := NewClient(&ClientInput{Store: s}).CopyFolder(context.Background(), "a/", "b/")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result.Status())
	assert.Empty(t, s.copies)
	assert.Len(t, s.listInputs, 1)
}

func TestCopyFolderDestinationKeys(t *testing.T) {
	s := newFakeStore(page("", "a/x/y.txt", "a/z.txt"))
	result, err := NewClient(&ClientInput{Store: s}).CopyFolder(context.Background(), "a/", "b/")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"a/x/y.txt": "b/x/y.txt",
		"a/z.txt":   "b/z.txt",
	}, s.copies)
	assert.Len(t, result.Transferred, 2)
}

func TestCopyFolderContinuationToken(t *testing.T) {
	s := newFakeStore(
		page("T2", "a/1", "a/2"),
		page("T3", "a/3"),
		page("", "a/4"),
	)
	result, err := NewClient(&ClientInput{Store: s, MaxKeys: 2}).CopyFolder(context.Background(), "a/", "b/")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "T2", "T3"}, s.tokens())
	assert.Equal(t, 3, result.Pages)
	assert.Len(t, s.copies, 4)
	for _, input := range s.listInputs {
		assert.Equal(t, "a/", input.Prefix)
		assert.Equal(t, int32(2), input.MaxKeys)
	}
}

func TestCopyFolderEmptyPageEndsCopy(t *testing.T) {
	s := newFakeStore(
		page("T2", "a/1"),
		page("T3"),
		page("", "a/never"),
	)
	_, err := NewClient(&ClientInput{Store: s}).CopyFolder(context.Background(), "a/", "b/")
	require.NoError(t, err)
	assert.Len(t, s.listInputs, 2)
	assert.Equal(t, map[string]string{"a/1": "b/1"}, s.copies)
}

func TestCopyFolderSamePrefix(t *testing.T) {
	for _, tc := range [][2]string{{"a/", "a/"}, {"a/", "a/b/"}, {"", "b/"}} {
		s := newFakeStore(page("", "a/1"))
		result, err := NewClient(&ClientInput{Store: s}).CopyFolder(context.Background(), tc[0], tc[1])
		require.Error(t, err, tc)
		assert.True(t, errors.Is(err, ErrSamePrefix), tc)
		assert.Equal(t, StatusFailure, result.Status(), tc)
		assert.Empty(t, s.listInputs, tc)
	}
}

func TestCopyFolderStopsAfterFailure(t *testing.T) {
	s := newFakeStore(
		page("T2", "a/1", "a/2"),
		page("", "a/3"),
	)
	s.copyErr["a/2"] = errors.New("access denied")

	logger := &memoryLogger{}
	result, err := NewClient(&ClientInput{Store: s, Logger: logger, MaxThreads: 1}).CopyFolder(context.Background(), "a/", "b/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Equal(t, StatusPartialFailure, result.Status())
	assert.Len(t, s.listInputs, 1)
	assert.NotContains(t, s.copies, "a/3")
	assert.Equal(t, 1, logger.count("Error transferring object"))
	assert.Equal(t, 1, logger.count("Operation complete"))
}

func TestCopyFolderObjectNotFound(t *testing.T) {
	s := newFakeStore(page("", "a/1"))
	s.copyErr["a/1"] = errFakeNotFound
	_, err := NewClient(&ClientInput{Store: s}).CopyFolder(context.Background(), "a/", "b/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrObjectNotFound))
}

func TestCopyFolderKeyOutsidePrefix(t *testing.T) {
	s := newFakeStore(page("", "ab/1"))
	_, err := NewClient(&ClientInput{Store: s}).CopyFolder(context.Background(), "a/", "b/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrKeyOutsidePrefix))
	assert.Empty(t, s.copies)
}
