// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package store

type ListObjectsInput struct {
	Prefix            string
	ContinuationToken string // empty for the first page
	MaxKeys           int32  // zero uses the backend default
}
