// Package config loads the command-line configuration.
package config

import (
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

// Config is the top-level configuration, read from YAML.
type Config struct {
	Log     logx.LogConf
	Storage StorageConf
	Render  RenderConf
}

// StorageConf configures the snapshot store.
type StorageConf struct {
	// Path is the database directory. Empty selects the platform data directory.
	Path     string `json:",optional"`
	InMemory bool   `json:",optional"`
}

// RenderConf configures board diagrams.
type RenderConf struct {
	SquareSize  int    `json:",default=64,range=[16:256]"`
	LightSquare string `json:",default=#f0d9b5"`
	DarkSquare  string `json:",default=#b58863"`
	Color       bool   `json:",default=true"`
}

// Load reads the configuration from path. With an empty path only the
// defaults are applied, and logging is reduced to plain-text errors so that
// command output stays clean.
func Load(path string) (Config, error) {
	var c Config

	if path == "" {
		if err := conf.FillDefault(&c); err != nil {
			return Config{}, err
		}
		c.Log.Encoding = "plain"
		c.Log.Level = "error"
		c.Log.Stat = false
		return c, nil
	}

	if err := conf.Load(path, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
