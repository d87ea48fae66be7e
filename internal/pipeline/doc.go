// Package pipeline orchestrates the batch: it draws input paths lazily
// from a single path or a stdin list, runs one engine job at a time to
// completion, reports failures as they happen, and aggregates per-job
// outcomes into the final batch result.
package pipeline
