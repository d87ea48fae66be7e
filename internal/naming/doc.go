// Package naming resolves output paths. Resolution is purely lexical: the
// resolver manipulates text only and never touches the filesystem, so any
// input string is acceptable and path validity is the caller's concern.
//
// Within a batch, a ClaimTracker records which input owns each resolved
// output path so that two inputs targeting the same file are caught before
// any engine process is spawned.
package naming
