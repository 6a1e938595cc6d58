// Package minio provides a datastore.Store backed by MinIO or any other
// S3-compatible object storage.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil { ... }
//
//	store := miniostore.NewStore(client, "benchmarks", "datasets/")
package minio
