// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package folder

import (
	"context"
	"fmt"
)

// SaveObject writes content to the object at prefix + relativePath.
// The key is a plain concatenation, so "pfx/" and "/file.json" produce "pfx//file.json".
func (c *Client) SaveObject(ctx context.Context, prefix string, relativePath string, content string) error {
	key := prefix + relativePath
	if err := c.store.PutObject(ctx, key, []byte(content)); err != nil {
		return fmt.Errorf("error saving object %q: %w", key, err)
	}
	_ = c.logger.Log("Saved object", map[string]interface{}{
		"key":  key,
		"size": len(content),
	})
	return nil
}
