// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunRecord summarizes one completed extraction run. The sampler returns it,
// the manifest serializes it, and the catalog persists it.
type RunRecord struct {
	// ID is the catalog row ID; zero until the run has been recorded.
	ID int64 `json:"id,omitempty" yaml:"id,omitempty"`

	// InputPath is the snapshot the run read from.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the file the sample array was written to.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Requested is the N-line cutoff the run was asked for.
	Requested int `json:"requested" yaml:"requested"`

	// LinesRead counts lines examined, successes and failures both.
	LinesRead int `json:"lines_read" yaml:"lines_read"`

	// Written counts records serialized to the output array.
	Written int `json:"written" yaml:"written"`

	// Skipped counts malformed lines that were warned about and dropped.
	Skipped int `json:"skipped" yaml:"skipped"`

	// BytesRead counts input bytes consumed, including line terminators.
	BytesRead int64 `json:"bytes_read" yaml:"bytes_read"`

	// StartedAt is the run start time in UTC.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Duration is the elapsed wall-clock time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}
