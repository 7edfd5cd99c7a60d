// Package config loads tdop settings from a TOML file.
//
//	[parser]
//	timeout = "5s"
//	buffer = 64
//
//	[render]
//	indent = "    "
//
//	[log]
//	verbosity = 1
//	file = "/tmp/tdop.log"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "tdop.toml"

type Config struct {
	Parser Parser `toml:"parser"`
	Render Render `toml:"render"`
	Log    Log    `toml:"log"`
}

type Parser struct {
	Timeout Duration `toml:"timeout"`
	Buffer  int      `toml:"buffer"`
}

type Render struct {
	Indent string `toml:"indent"`
}

type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func Default() *Config {
	return &Config{
		Parser: Parser{Timeout: Duration{5 * time.Second}, Buffer: 64},
		Render: Render{Indent: "    "},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// path is DefaultFile.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultFile {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Parser.Timeout.Duration <= 0 {
		return fmt.Errorf("config: parser.timeout must be positive, got %s", c.Parser.Timeout)
	}
	if c.Parser.Buffer < 0 {
		return fmt.Errorf("config: parser.buffer must not be negative, got %d", c.Parser.Buffer)
	}
	return nil
}
