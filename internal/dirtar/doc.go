// Package dirtar archives each immediate subdirectory of a source directory
// into its own uncompressed tar file by driving the system tar binary.
//
// Entries are enumerated one level deep with hidden directories excluded and
// archived sequentially. An existing <name>.tar in the output directory is
// never overwritten, so re-runs only pick up new subdirectories.
package dirtar
