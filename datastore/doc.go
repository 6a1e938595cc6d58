// Package datastore provides storage abstraction for persisted benchmark
// datasets.
//
// Store is the interface for writing and reading immutable dataset blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests and examples
//   - LocalStore: local filesystem with optional read throttling
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible endpoints
//
// # Custom Implementations
//
// Implement the Store interface to support custom backends:
//
//	type Store interface {
//	    Put(ctx, name, data) error             // Atomic write
//	    Open(ctx, name) (io.ReadCloser, error) // Open for reading
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package datastore
