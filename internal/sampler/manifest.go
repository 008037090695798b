// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sampler

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-sampler/pkg/types"
)

// Manifest is the on-disk YAML record of one extraction run. Written next to
// the output file on request, it lets a sample be traced back to the snapshot
// and invocation that produced it without re-reading either file.
type Manifest struct {
	Input     string    `yaml:"input"`
	Output    string    `yaml:"output"`
	Requested int       `yaml:"requested"`
	LinesRead int       `yaml:"lines_read"`
	Written   int       `yaml:"written"`
	Skipped   int       `yaml:"skipped"`
	OutputSHA string    `yaml:"output_sha,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteManifest saves the run summary to a YAML file. The output checksum is
// best-effort: a sample file that cannot be re-read simply yields a manifest
// without one.
func WriteManifest(path string, rec types.RunRecord) error {
	m := Manifest{
		Input:     rec.InputPath,
		Output:    rec.OutputPath,
		Requested: rec.Requested,
		LinesRead: rec.LinesRead,
		Written:   rec.Written,
		Skipped:   rec.Skipped,
		Timestamp: rec.StartedAt,
	}
	if sum, err := fileChecksum(rec.OutputPath); err == nil {
		m.OutputSHA = sum
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads a previously written manifest from disk.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// fileChecksum returns the first 12 hex characters of the SHA-256 of the
// file contents.
func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:12], nil
}
