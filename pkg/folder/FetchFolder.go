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
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/navwar/gobucket/pkg/body"
	"github.com/navwar/gobucket/pkg/lfs"
	"github.com/navwar/gobucket/pkg/store"
)

const (
	directoryMode = 0755
	fileMode      = 0644
)

// FetchFolder downloads every object under prefix into localDir.
// The local path of each object is its key with prefix removed, relative to localDir.
// The first failure stops the download; files already written are left in place.
func (c *Client) FetchFolder(ctx context.Context, prefix string, localDir string) (*Result, error) {
	result := newResult("fetch", prefix, localDir)

	if !filepath.IsAbs(localDir) {
		absoluteDir, err := filepath.Abs(localDir)
		if err != nil {
			return c.finish(result, fmt.Errorf("error resolving local directory %q: %w", localDir, err))
		}
		localDir = absoluteDir
	}

	if err := c.fs.MkdirAll(localDir, directoryMode); err != nil {
		return c.finish(result, fmt.Errorf("error creating local directory %q: %w", localDir, err))
	}

	localFileSystem := lfs.NewLocalFileSystemWithFs(c.fs, localDir)

	err := c.forEachPage(ctx, prefix, result, func(page *store.ListObjectsOutput) error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.maxThreads)
		for _, object := range page.Objects {
			if gctx.Err() != nil {
				break
			}
			object := object
			g.Go(func() error {
				if err := c.fetchObject(gctx, result, localFileSystem, prefix, object); err != nil {
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

func (c *Client) fetchObject(ctx context.Context, result *Result, localFileSystem *lfs.LocalFileSystem, prefix string, object store.ObjectReference) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relativePath, err := ReplacePrefix(object.Key, prefix, "")
	if err != nil {
		return err
	}

	// directory markers and the prefix itself have no file name
	if len(relativePath) == 0 || strings.HasSuffix(relativePath, "/") {
		c.skip(result, object.Key, "no file name")
		return nil
	}

	o, err := c.store.GetObject(ctx, object.Key)
	if err != nil {
		if c.store.IsNotExist(err) {
			return fmt.Errorf("%w: %q: %w", ErrObjectNotFound, object.Key, err)
		}
		return fmt.Errorf("error getting object %q: %w", object.Key, err)
	}

	data, err := body.Bytes(ctx, o.Body)
	_ = o.Close()
	if err != nil {
		return fmt.Errorf("error reading object %q: %w", object.Key, err)
	}

	localPath := filepath.FromSlash(relativePath)
	if err := localFileSystem.WriteFile(ctx, localPath, data, fileMode, true); err != nil {
		return fmt.Errorf("error writing object %q to %q: %w", object.Key, localFileSystem.Join(localFileSystem.Root(), localPath), err)
	}

	c.transfer(result, Transfer{
		Source:      object.Key,
		Destination: localFileSystem.Join(localFileSystem.Root(), localPath),
		Size:        int64(len(data)),
	})

	return nil
}
