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
	"fmt"
	"runtime"

	"github.com/spf13/afero"

	"github.com/navwar/gobucket/pkg/store"
)

const (
	DefaultMaxThreads = 8
	DefaultMaxKeys    = 1000
)

// Client runs folder operations against a single bucket.
type Client struct {
	store      store.ObjectStore
	fs         afero.Fs
	logger     Logger
	maxThreads int
	maxKeys    int32
	maxPages   int
}

type ClientInput struct {
	Store store.ObjectStore
	// Fs is the local filesystem FetchFolder writes to.  Defaults to the operating system filesystem.
	Fs     afero.Fs
	Logger Logger
	// MaxThreads is the number of objects transferred concurrently per page.
	// Zero uses DefaultMaxThreads and -1 uses the number of CPUs.
	MaxThreads int
	// MaxKeys is the listing page size.  Zero uses DefaultMaxKeys.
	MaxKeys int32
	// MaxPages limits the number of pages listed.  Zero or -1 is unlimited.
	MaxPages int
}

// forEachPage lists the objects under prefix one page at a time and calls fn with each page.
// The next page is requested with the continuation token of the page just processed,
// only after fn returns without error.
func (c *Client) forEachPage(ctx context.Context, prefix string, result *Result, fn func(page *store.ListObjectsOutput) error) error {
	continuationToken := ""
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if c.maxPages > 0 && result.Pages >= c.maxPages {
			_ = c.logger.Log("Page limit reached", map[string]interface{}{
				"prefix": prefix,
				"pages":  result.Pages,
			})
			return nil
		}

		page, err := c.store.ListObjects(ctx, &store.ListObjectsInput{
			Prefix:            prefix,
			ContinuationToken: continuationToken,
			MaxKeys:           c.maxKeys,
		})
		if err != nil {
			err = fmt.Errorf("error listing objects with prefix %q: %w", prefix, err)
			result.addFailure("", err)
			return err
		}
		result.addPage()

		if len(page.Objects) == 0 {
			return nil
		}

		if err := fn(page); err != nil {
			return err
		}

		if !page.IsTruncated {
			return nil
		}
		if len(page.NextContinuationToken) == 0 {
			err := fmt.Errorf("%w: prefix %q, page %d", ErrMissingContinuationToken, prefix, result.Pages)
			result.addFailure("", err)
			return err
		}
		continuationToken = page.NextContinuationToken
	}
}

// recordFailure adds err to the result unless it only reports the cancellation caused by an earlier failure.
func (c *Client) recordFailure(ctx context.Context, result *Result, key string, err error) {
	if ctx.Err() != nil && errors.Is(err, context.Canceled) && result.hasFailures() {
		return
	}
	result.addFailure(key, err)
	_ = c.logger.Log("Error transferring object", map[string]interface{}{
		"operation": result.Operation,
		"key":       key,
		"error":     err.Error(),
	})
}

func (c *Client) skip(result *Result, key string, reason string) {
	result.addSkipped(key)
	_ = c.logger.Log("Skipped object", map[string]interface{}{
		"operation": result.Operation,
		"key":       key,
		"reason":    reason,
	})
}

func (c *Client) transfer(result *Result, t Transfer) {
	result.addTransfer(t)
	_ = c.logger.Log("Transferred object", map[string]interface{}{
		"operation":   result.Operation,
		"source":      t.Source,
		"destination": t.Destination,
		"size":        t.Size,
	})
}

// finish records an error that ended the operation without a per-object failure and logs the result.
func (c *Client) finish(result *Result, err error) (*Result, error) {
	if err != nil && !result.hasFailures() {
		result.addFailure("", err)
	}
	_ = c.logger.Log("Operation complete", result.Fields())
	return result, result.Err()
}

func NewClient(input *ClientInput) *Client {
	fs := input.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	var logger Logger = nopLogger{}
	if input.Logger != nil {
		logger = input.Logger
	}
	maxThreads := input.MaxThreads
	switch {
	case maxThreads == 0:
		maxThreads = DefaultMaxThreads
	case maxThreads < 0:
		maxThreads = runtime.NumCPU()
	}
	maxKeys := input.MaxKeys
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}
	return &Client{
		store:      input.Store,
		fs:         fs,
		logger:     logger,
		maxThreads: maxThreads,
		maxKeys:    maxKeys,
		maxPages:   input.MaxPages,
	}
}
