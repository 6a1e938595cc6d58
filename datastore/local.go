package datastore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/time/rate"
)

// LocalOptions configures a LocalStore.
type LocalOptions struct {
	// ReadLimitBytesPerSec throttles blob reads to the given throughput.
	// If 0, reads are unlimited.
	ReadLimitBytesPerSec int
}

// LocalStore implements Store using the local file system.
type LocalStore struct {
	root    string
	limiter *rate.Limiter // nil if unlimited
}

// NewLocalStore creates a LocalStore rooted at the given directory.
// The directory is created if it does not exist.
func NewLocalStore(root string, optFns ...func(o *LocalOptions)) (*LocalStore, error) {
	opts := LocalOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("datastore: create root: %w", err)
	}

	s := &LocalStore{root: root}
	if opts.ReadLimitBytesPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.ReadLimitBytesPerSec), opts.ReadLimitBytesPerSec)
	}
	return s, nil
}

// Put writes a blob atomically via a temp file and rename.
func (s *LocalStore) Put(_ context.Context, name string, data []byte) error {
	path := filepath.Join(s.root, name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Open opens a blob for reading. If a read limit is configured, the
// returned reader is throttled.
func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.limiter == nil {
		return f, nil
	}

	return &throttledReader{ctx: ctx, f: f, limiter: s.limiter}, nil
}

// Delete removes a blob.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// List returns all blob names with the given prefix.
func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if strings.HasPrefix(rel, prefix) {
			names = append(names, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// throttledReader paces reads through a shared rate limiter so that bulk
// dataset loads do not saturate disk bandwidth.
type throttledReader struct {
	ctx     context.Context
	f       *os.File
	limiter *rate.Limiter
}

func (r *throttledReader) Read(p []byte) (int, error) {
	// Cap each wait at the limiter burst, otherwise WaitN rejects
	// oversized requests outright.
	if burst := r.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}

	n, err := r.f.Read(p)
	if n > 0 {
		if werr := r.limiter.WaitN(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

func (r *throttledReader) Close() error {
	return r.f.Close()
}
