// Package exiftool provides a typed wrapper around exiftool JSON output.
//
// This package has no shuttercheck-specific dependencies beyond the raw
// metadata type and could be extracted as a standalone library.
//
// Primary entry point:
//   - Extract: executes exiftool over a batch of files and returns one
//     result per requested file
//
// A file exiftool cannot read yields a per-file error in its result; it
// never aborts the rest of the batch.
package exiftool
