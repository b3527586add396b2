// Package config loads the TOML configuration shared by the command line
// tools.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"

	"github.com/TACITVS/Keccak-Feistel-Golang/feistel"
	"github.com/TACITVS/Keccak-Feistel-Golang/internal/log"
	"github.com/TACITVS/Keccak-Feistel-Golang/keccak"
)

// Config holds all tool configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Hash   HashConfig   `toml:"hash"`
	Cipher CipherConfig `toml:"cipher"`
}

// LogConfig selects the log level and encoding.
type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// HashConfig holds sponge parameters. OutputLen 0 means capacity/8.
type HashConfig struct {
	Rate       int `toml:"rate"`
	Capacity   int `toml:"capacity"`
	OutputLen  int `toml:"output_len"`
	BufferSize int `toml:"buffer_size"`
}

// CipherConfig holds the default chaining mode.
type CipherConfig struct {
	Mode feistel.Mode `toml:"mode"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Hash: HashConfig{
			Rate:       keccak.Rate256,
			Capacity:   keccak.Capacity256,
			BufferSize: keccak.DefaultBufferSize,
		},
		Cipher: CipherConfig{
			Mode: feistel.CBC,
		},
	}
}

// Load reads path over the defaults and validates the result. Unknown keys
// are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, fmt.Errorf("log.level: %w", err))
	}
	if _, err := c.Hash.NewState(); err != nil {
		result = multierror.Append(result, fmt.Errorf("hash: %w", err))
	}
	if c.Hash.BufferSize < 0 {
		result = multierror.Append(result, fmt.Errorf("hash.buffer_size: must not be negative, got %d", c.Hash.BufferSize))
	}
	if !c.Cipher.Mode.Valid() {
		result = multierror.Append(result, fmt.Errorf("cipher.mode: %w: %d", feistel.ErrUnknownMode, int(c.Cipher.Mode)))
	}
	return result.ErrorOrNil()
}

// NewState returns a fresh sponge for these parameters.
func (h HashConfig) NewState() (*keccak.State, error) {
	if h.OutputLen == 0 {
		return keccak.New(h.Rate, h.Capacity)
	}
	return keccak.NewWithOutputLen(h.Rate, h.Capacity, h.OutputLen)
}
