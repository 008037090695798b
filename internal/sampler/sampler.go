// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sampler extracts the leading records of a newline-delimited JSON
// snapshot and writes them out as a single JSON array, suitable for building
// a small local sample from a multi-gigabyte metadata dump.
package sampler

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pdiddy/arxiv-sampler/pkg/types"
)

// maxLineBytes caps a single snapshot line. arXiv abstract lines routinely
// blow past bufio.Scanner's 64 KiB default; anything beyond this cap is
// treated as a read error rather than a parse warning.
const maxLineBytes = 64 << 20

// Extract reads up to cfg.N lines from cfg.InputPath, parses each line as one
// JSON value, and writes the successfully parsed values, in input order, as a
// 2-space-indented JSON array to cfg.OutputPath. Malformed lines are reported
// on w and skipped; they still count toward the N-line cutoff. Progress is
// reported on w every cfg.ProgressInterval lines examined.
//
// The entire file is never held in memory: only one line is buffered at a
// time, plus the accumulated sample itself.
func Extract(ctx context.Context, cfg types.SamplerConfig, w io.Writer) (types.RunRecord, error) {
	started := time.Now()
	rec := types.RunRecord{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Requested:  cfg.N,
		StartedAt:  started.UTC(),
	}

	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = types.DefaultProgressInterval
	}

	fmt.Fprintf(w, "Extracting first %d JSON objects from %s...\n", cfg.N, cfg.InputPath)

	in, err := os.Open(cfg.InputPath)
	if err != nil {
		return rec, fmt.Errorf("opening input %s: %w", cfg.InputPath, err)
	}
	defer in.Close()

	// Empty slice, not nil: an empty sample must serialize as [] rather
	// than null.
	records := make([]json.RawMessage, 0)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for i := 0; i < cfg.N && scanner.Scan(); i++ {
		select {
		case <-ctx.Done():
			return rec, ctx.Err()
		default:
		}

		rec.LinesRead++
		rec.BytesRead += int64(len(scanner.Bytes())) + 1

		line := bytes.TrimSpace(scanner.Bytes())

		var value json.RawMessage
		if err := json.Unmarshal(line, &value); err != nil {
			fmt.Fprintf(w, "Warning: Failed to parse line %d: %v\n", i+1, err)
			rec.Skipped++
		} else {
			records = append(records, value)
		}

		if (i+1)%interval == 0 {
			fmt.Fprintf(w, "  Processed %d lines (%s)...\n", i+1, humanize.Bytes(uint64(rec.BytesRead)))
		}
	}
	if err := scanner.Err(); err != nil {
		return rec, fmt.Errorf("reading input %s: %w", cfg.InputPath, err)
	}

	fmt.Fprintf(w, "Writing %d objects to %s...\n", len(records), cfg.OutputPath)

	if err := writeArray(cfg.OutputPath, records); err != nil {
		return rec, err
	}

	rec.Written = len(records)
	rec.Duration = time.Since(started)

	fmt.Fprintf(w, "Done! Extracted %d objects to %s\n", rec.Written, cfg.OutputPath)
	return rec, nil
}

// writeArray serializes records as one indented JSON array, writing through a
// temp file in the destination directory so a failed run never leaves a
// truncated output behind. HTML escaping is off, so non-ASCII text and the
// characters <, >, & survive as written in the snapshot.
func writeArray(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating output in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		tmp.Close()
		return fmt.Errorf("writing output %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting output permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving output into place: %w", err)
	}
	return nil
}
