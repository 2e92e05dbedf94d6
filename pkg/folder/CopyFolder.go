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
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/navwar/gobucket/pkg/store"
)

// CopyFolder copies every object under sourcePrefix to the same relative key under destinationPrefix
// using server-side copies within the bucket.
// Pages are copied one at a time.  The first failure stops the copy and later pages are not listed.
func (c *Client) CopyFolder(ctx context.Context, sourcePrefix string, destinationPrefix string) (*Result, error) {
	result := newResult("copy", sourcePrefix, destinationPrefix)

	// copies into the source prefix would be listed again by later pages
	if strings.HasPrefix(destinationPrefix, sourcePrefix) {
		return c.finish(result, fmt.Errorf("%w: source %q, destination %q", ErrSamePrefix, sourcePrefix, destinationPrefix))
	}

	err := c.forEachPage(ctx, sourcePrefix, result, func(page *store.ListObjectsOutput) error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.maxThreads)
		for _, object := range page.Objects {
			if gctx.Err() != nil {
				break
			}
			object := object
			g.Go(func() error {
				if err := c.copyObject(gctx, result, sourcePrefix, destinationPrefix, object); err != nil {
					c.recordFailure(gctx, result, object.Key, err)
					return err
				}
				return nil
			})
		}
		return g.Wait()
	})

	return c.finish(result, err)
}

func (c *Client) copyObject(ctx context.Context, result *Result, sourcePrefix string, destinationPrefix string, object store.ObjectReference) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	destinationKey, err := ReplacePrefix(object.Key, sourcePrefix, destinationPrefix)
	if err != nil {
		return err
	}

	if err := c.store.CopyObject(ctx, object.Key, destinationKey); err != nil {
		if c.store.IsNotExist(err) {
			return fmt.Errorf("%w: %q: %w", ErrObjectNotFound, object.Key, err)
		}
		return fmt.Errorf("error copying object %q to %q: %w", object.Key, destinationKey, err)
	}

	c.transfer(result, Transfer{
		Source:      object.Key,
		Destination: destinationKey,
		Size:        object.Size,
	})

	return nil
}
