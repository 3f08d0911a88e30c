// Package file provides a BlobStore that keeps one file per blob in a directory.
// Writes are atomic (temp file, fsync, rename) and guarded by an advisory lock
// so that a CLI invocation and a running server do not interleave writes.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/sys/unix"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
	lockName = ".lock"
	blobExt  = ".blob"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// BlobStore stores blobs as files under dir.
type BlobStore struct {
	dir  string
	lock *os.File
}

var _ port.BlobStore = (*BlobStore)(nil)

// Open prepares dir for use as a blob store.
func Open(dir string) (*BlobStore, error) {
	if dir == "" {
		return nil, errors.New("blob directory is required")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	lock, err := os.OpenFile(filepath.Join(dir, lockName), os.O_CREATE|os.O_RDWR, filePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	return &BlobStore{dir: dir, lock: lock}, nil
}

// Get implements port.BlobStore.
func (s *BlobStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	unlock, err := s.flock(unix.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("blob %q: %w", key, entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set implements port.BlobStore.
func (s *BlobStore) Set(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	unlock, err := s.flock(unix.LOCK_EX)
	if err != nil {
		return err
	}
	defer unlock()

	return writeAtomic(path, value)
}

// Close implements port.BlobStore.
func (s *BlobStore) Close() error {
	return s.lock.Close()
}

func (s *BlobStore) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(s.dir, key+blobExt), nil
}

func (s *BlobStore) flock(how int) (func(), error) {
	fd := int(s.lock.Fd())
	if err := unix.Flock(fd, how); err != nil {
		return nil, fmt.Errorf("failed to lock blob directory: %w", err)
	}
	return func() { _ = unix.Flock(fd, unix.LOCK_UN) }, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Chmod(filePerm); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(file.Name(), path)
}
