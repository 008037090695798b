package types

// Default run parameters, applied when neither positional arguments nor the
// config file supply a value.
const (
	DefaultN                = 100
	DefaultOutputPath       = "arxiv_sample.json"
	DefaultInputPath        = "arxiv-metadata-oai-snapshot.json"
	DefaultProgressInterval = 100
)

// SamplerConfig holds the immutable parameters of one extraction run.
type SamplerConfig struct {
	// N is the maximum number of input lines to consider. Values <= 0
	// yield an empty output array.
	N int `json:"n" yaml:"n"`

	// InputPath is the JSONL snapshot to read, one JSON value per line.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the destination file, created or overwritten.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// ProgressInterval is the number of lines between progress messages
	// (default 100).
	ProgressInterval int `json:"progress_interval" yaml:"progress_interval"`

	// ManifestPath, if set, is where the run manifest YAML is written.
	ManifestPath string `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`

	// CatalogPath, if set, is the SQLite run catalog the run is recorded in.
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`
}
