// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package ts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = ParseLocation("Local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = ParseLocation("-8")
	require.NoError(t, err)
	_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, -8*60*60, offset)

	_, err = ParseLocation("")
	assert.Error(t, err)

	_, err = ParseLocation("20")
	assert.Error(t, err)

	_, err = ParseLocation("Not/AZone")
	assert.Error(t, err)
}

func TestParseLayout(t *testing.T) {
	assert.Equal(t, Layout(time.RFC3339Nano), ParseLayout("RFC3339Nano"))
	assert.Equal(t, Layout("2006"), ParseLayout("2006"))

	at := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-09T14:05:00Z", Layout("").Format(at))
	assert.Equal(t, "2:05PM", ParseLayout("Kitchen").Format(at))
}
