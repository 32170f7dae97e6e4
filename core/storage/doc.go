// Package storage provides access to division data files kept in object storage.
//
// It wraps the MinIO Go client so that inputs and reports can live in an S3
// compatible bucket instead of the local disk. Paths of the form
// s3://bucket/key are resolved through this package (see core/source).
//
// # Client Interface
//
// The Client interface only carries the operations the reconciler needs, which
// keeps it easy to mock (see core/storage/mocks).
//
//   - BucketExists: Checks the report bucket before a report is written.
//   - GetObject: Retrieves an input file as a stream.
//   - PutObject: Uploads a generated report.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	bucket, key, ok := storage.SplitURL("s3://division/admin-sehir.sql")
package storage
