// Package s3 provides an Amazon S3 backed datastore.Store.
//
// Uploads go through the AWS upload manager so large datasets are split
// into parallel multipart uploads; reads stream the object body.
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil { ... }
//
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "benchmarks/")
package s3
