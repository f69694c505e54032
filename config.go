package xapi

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PasswordEnv overrides Config.Password when set.
const PasswordEnv = "XAPI_PASSWORD"

// Config is the YAML representation of a client setup.
type Config struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	UserID         string        `yaml:"user_id"`
	Password       string        `yaml:"password"`
	AppName        string        `yaml:"app_name,omitempty"`
	SettleInterval time.Duration `yaml:"settle_interval"`
	ChunkSize      int           `yaml:"chunk_size"`
	MaxFrameSize   int           `yaml:"max_frame_size"`
	StrictDecoding *bool         `yaml:"strict_decoding,omitempty"` // nil means strict
}

// DefaultConfig returns a Config filled with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		SettleInterval: DefaultSettleInterval,
		ChunkSize:      DefaultChunkSize,
		MaxFrameSize:   DefaultMaxFrameSize,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	if password := os.Getenv(PasswordEnv); password != "" {
		cfg.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate performs basic configuration validation.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: host cannot be empty", ErrInvalidParam)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: invalid port number %d", ErrInvalidParam, c.Port)
	}
	if c.SettleInterval < 0 {
		return fmt.Errorf("%w: settle interval cannot be negative", ErrInvalidParam)
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk size cannot be negative", ErrInvalidParam)
	}
	if c.MaxFrameSize < 0 {
		return fmt.Errorf("%w: max frame size cannot be negative", ErrInvalidParam)
	}
	if c.ChunkSize > 0 && c.MaxFrameSize > 0 && c.ChunkSize > c.MaxFrameSize {
		return fmt.Errorf("%w: chunk size %d exceeds max frame size %d", ErrInvalidParam, c.ChunkSize, c.MaxFrameSize)
	}
	return nil
}

// ClientOptions converts the configuration into client options.
// Extra connector options are appended after the ones derived from c.
func (c *Config) ClientOptions(extra ...ConnectorOption) []ClientOption {
	connOpts := []ConnectorOption{
		WithSettleInterval(c.SettleInterval),
		WithChunkSize(c.ChunkSize),
		WithMaxFrameSize(c.MaxFrameSize),
	}
	connOpts = append(connOpts, extra...)

	opts := []ClientOption{
		WithHost(c.Host),
		WithPort(c.Port),
		WithConnectorOptions(connOpts...),
	}
	if c.StrictDecoding != nil && !*c.StrictDecoding {
		opts = append(opts, WithLenientDecoding())
	}
	return opts
}

// Save writes the configuration to path, leaving the password out.
func (c *Config) Save(path string) error {
	cpy := *c
	cpy.Password = ""

	data, err := yaml.Marshal(&cpy)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", path, err)
	}
	return nil
}
