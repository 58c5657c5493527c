// Package downloader fetches the Unicode Consortium data files.
//
// Downloads are cached on disk: an existing destination file is returned as-is
// without touching the network, matching the behavior other tools expect from
// the db/ directory. Failures are returned to the caller and are fatal to an
// ingest run.
package downloader
