package salon

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the optional TOML config file. Flags and environment
// variables take precedence over it.
type Config struct {
	// Server address, e.g. "https://critiq.games"
	Address string `toml:"address"`
	// Path to the session file
	Identity string `toml:"identity"`
}

// LoadConfig reads a TOML config file. A missing file yields an
// empty config, not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	_, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.WithStack(err)
	}

	_, err = toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}

	return cfg, nil
}
