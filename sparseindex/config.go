package sparseindex

import "github.com/BurntSushi/toml"

// FileConfig is the on-disk shape for sparseindex tuning knobs that are
// independent of the position type S, the things an operator would want
// to set in a config file rather than in code.
type FileConfig struct {
	// ArenaChunkSize, when positive, configures the size of each chunk
	// used by a pooled sublist allocator. Zero means no arena pooling.
	ArenaChunkSize int `toml:"arena_chunk_size"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// LoadConfig reads a FileConfig from a TOML file at path.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
