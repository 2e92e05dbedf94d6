// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// LocalFileSystem is a directory tree rooted at a base path.
// Names are resolved relative to the root and cannot escape it.
type LocalFileSystem struct {
	root string
	fs   afero.Fs
}

func (lfs *LocalFileSystem) Dir(name string) string {
	return filepath.Dir(name)
}

func (lfs *LocalFileSystem) IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func (lfs *LocalFileSystem) Join(name ...string) string {
	return filepath.Join(name...)
}

// MkdirAll creates the directory and any missing parents.
// It succeeds if the directory already exists, so concurrent callers do not conflict.
func (lfs *LocalFileSystem) MkdirAll(ctx context.Context, name string, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return lfs.fs.MkdirAll(name, mode)
}

func (lfs *LocalFileSystem) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return afero.ReadFile(lfs.fs, name)
}

func (lfs *LocalFileSystem) Root() string {
	return lfs.root
}

func (lfs *LocalFileSystem) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return lfs.fs.Stat(name)
}

// WriteFile writes data to the named file, truncating it if it exists.
// If parents is true, missing parent directories are created.
func (lfs *LocalFileSystem) WriteFile(ctx context.Context, name string, data []byte, perm os.FileMode, parents bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	parent := lfs.Dir(name)
	if _, err := lfs.fs.Stat(parent); err != nil {
		if !lfs.IsNotExist(err) {
			return fmt.Errorf("error stating destination parent %q: %w", parent, err)
		}
		if !parents {
			return fmt.Errorf(
				"parent directory for destination %q does not exist and parents parameter is false",
				name,
			)
		}
		if err := lfs.MkdirAll(ctx, parent, 0755); err != nil {
			return fmt.Errorf("error creating parent directories for %q: %w", name, err)
		}
	}

	destinationFile, err := lfs.fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("error creating destination file at %q: %w", name, err)
	}

	n, err := destinationFile.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		_ = destinationFile.Close() // silently close destination file
		return fmt.Errorf("error writing to %q: %w", name, err)
	}

	if err := destinationFile.Close(); err != nil {
		return fmt.Errorf("error closing destination file after writing: %w", err)
	}

	return nil
}

// NewLocalFileSystemWithFs returns a file system rooted at rootPath within base.
func NewLocalFileSystemWithFs(base afero.Fs, rootPath string) *LocalFileSystem {
	return &LocalFileSystem{
		root: rootPath,
		fs:   afero.NewBasePathFs(base, rootPath),
	}
}
