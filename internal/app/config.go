package app

import (
	"errors"

	"github.com/vk/filetemp/internal/filetype"
)

// Config holds everything an App instance needs to run.
type Config struct {
	// FileType selects the generation logic and the option set.
	FileType filetype.FileType

	// Args are the raw option tokens, already stripped of the program
	// name and the file-type selector.
	Args []string

	// CacheDir overrides where the option cache lives. Empty means the
	// platform data directory. Tests point this at a temp dir.
	CacheDir string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FileType == filetype.Unknown {
		return nil, errors.New("FileType is a required configuration field")
	}
	return &cfg, nil
}
