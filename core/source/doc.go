// Package source reads whole input files into memory as text.
//
// Inputs are small, fixed administrative lists, so they are read in one go
// rather than streamed. A path is either a local file or an s3://bucket/key
// URL served through core/storage. Bytes that are not valid UTF-8 are replaced
// with U+FFFD instead of failing the run.
//
// A missing input is reported as ErrNotFound so that callers can decide
// whether it is fatal (the gold list) or tolerable (a dump snapshot).
package source
