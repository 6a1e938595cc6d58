package dataset

import (
	"bytes"
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sortgo/datastore"
)

// Save encodes d and writes it to store under the given name.
func Save(ctx context.Context, store datastore.Store, name string, d *Dataset, compression Compression) error {
	var buf bytes.Buffer
	if err := Encode(&buf, d, compression); err != nil {
		return err
	}
	return store.Put(ctx, name, buf.Bytes())
}

// Load reads and decodes the dataset stored under name.
func Load(ctx context.Context, store datastore.Store, name string) (*Dataset, error) {
	r, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return Decode(r)
}

// LoadAll fetches the named datasets concurrently. Results keep the order
// of names. The first failure cancels the remaining loads.
func LoadAll(ctx context.Context, store datastore.Store, names []string) ([]*Dataset, error) {
	out := make([]*Dataset, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			d, err := Load(ctx, store, name)
			if err != nil {
				return err
			}
			out[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
