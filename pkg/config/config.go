// Package config loads tagcloud settings from a TOML file.
//
// Settings resolve in three layers: built-in defaults, then the config file,
// then command-line flags (applied by the CLI). The file is optional; its
// default location is $XDG_CONFIG_HOME/tagcloud/config.toml.
//
//	[layout]
//	center_x = 512
//	center_y = 512
//	count = 100
//	max_width = 99
//	max_height = 99
//	seed = 42
//
//	[render]
//	width = 1024
//	height = 1024
//	style = "solid"
//	formats = ["svg", "png"]
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	max_radius = 2048
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// AppName names the config and cache directories.
const AppName = "tagcloud"

// Server defaults.
const (
	DefaultAddr         = ":8080"
	DefaultServerRadius = 2048
	DefaultTimeout      = 30 * time.Second
)

// Config is the full set of file-backed settings.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig mirrors the layout half of pipeline.Options.
type LayoutConfig struct {
	CenterX   int    `toml:"center_x"`
	CenterY   int    `toml:"center_y"`
	Count     int    `toml:"count"`
	MinWidth  int    `toml:"min_width"`
	MinHeight int    `toml:"min_height"`
	MaxWidth  int    `toml:"max_width"`
	MaxHeight int    `toml:"max_height"`
	Seed      uint64 `toml:"seed"`
	MaxRadius int    `toml:"max_radius"`
}

// RenderConfig mirrors the render half of pipeline.Options.
type RenderConfig struct {
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Style      string   `toml:"style"`
	Formats    []string `toml:"formats"`
	Background string   `toml:"background"`
	Engine     string   `toml:"engine"`
	Scale      float64  `toml:"scale"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend         string `toml:"backend"`
	Dir             string `toml:"dir"`
	RedisAddr       string `toml:"redis_addr"`
	RedisPassword   string `toml:"redis_password"`
	RedisDB         int    `toml:"redis_db"`
	RedisPrefix     string `toml:"redis_prefix"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
	// MaxRadius bounds placement for requests that do not set one.
	MaxRadius int           `toml:"max_radius"`
	Timeout   time.Duration `toml:"timeout"`
	// MaxRects caps the number of rectangles per request.
	MaxRects int `toml:"max_rects"`
	// MaxPixels caps width*height*scale² of rendered output per request.
	MaxPixels int `toml:"max_pixels"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Layout: LayoutConfig{
			CenterX:   pipeline.DefaultCenter.X,
			CenterY:   pipeline.DefaultCenter.Y,
			Count:     pipeline.DefaultCount,
			MaxWidth:  pipeline.DefaultMaxSide,
			MaxHeight: pipeline.DefaultMaxSide,
			Seed:      pipeline.DefaultSeed,
		},
		Render: RenderConfig{
			Width:   pipeline.DefaultWidth,
			Height:  pipeline.DefaultHeight,
			Style:   pipeline.DefaultStyle,
			Formats: []string{pipeline.FormatSVG},
			Engine:  pipeline.DefaultEngine,
			Scale:   1,
		},
		Cache: CacheConfig{
			Backend: cache.BackendFile,
		},
		Server: ServerConfig{
			Addr:      DefaultAddr,
			MaxRadius: DefaultServerRadius,
			Timeout:   DefaultTimeout,
			MaxRects:  10000,
			MaxPixels: 16 << 20,
		},
	}
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/tagcloud/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the cache directory using the XDG standard (~/.cache/tagcloud/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads the config file at path over the defaults. An empty path means
// DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return finish(cfg, md, path)
}

// Decode parses TOML text over the defaults. It is Load without the file.
func Decode(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	return finish(cfg, md, "config")
}

func finish(cfg Config, md toml.MetaData, source string) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", source, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", source)
	}
	return cfg, nil
}

// Validate checks the settings that pipeline options validation cannot.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case "", cache.BackendNone, cache.BackendFile, cache.BackendRedis, cache.BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Server.MaxRadius < 0 || c.Server.MaxRects < 0 || c.Server.MaxPixels < 0 || c.Server.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server limits must be non-negative")
	}
	opts := c.PipelineOptions()
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}
	return opts.ValidateForRender()
}

// PipelineOptions converts the layout and render sections to pipeline options.
func (c Config) PipelineOptions() pipeline.Options {
	center := geometry.Pt(c.Layout.CenterX, c.Layout.CenterY)
	return pipeline.Options{
		Center:     &center,
		Count:      c.Layout.Count,
		MinWidth:   c.Layout.MinWidth,
		MinHeight:  c.Layout.MinHeight,
		MaxWidth:   c.Layout.MaxWidth,
		MaxHeight:  c.Layout.MaxHeight,
		Seed:       c.Layout.Seed,
		MaxRadius:  c.Layout.MaxRadius,
		Width:      c.Render.Width,
		Height:     c.Render.Height,
		Style:      c.Render.Style,
		Formats:    append([]string(nil), c.Render.Formats...),
		Background: c.Render.Background,
		Engine:     c.Render.Engine,
		Scale:      c.Render.Scale,
	}
}

// CacheOptions converts the cache section to cache.Open options. A file
// backend without a directory uses CacheDir.
func (c Config) CacheOptions() (cache.Options, error) {
	opts := cache.Options{
		Backend: c.Cache.Backend,
		Dir:     c.Cache.Dir,
		Redis: cache.RedisConfig{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
			Prefix:   c.Cache.RedisPrefix,
		},
		Mongo: cache.MongoConfig{
			URI:        c.Cache.MongoURI,
			Database:   c.Cache.MongoDatabase,
			Collection: c.Cache.MongoCollection,
		},
	}
	if opts.Backend == cache.BackendFile && opts.Dir == "" {
		dir, err := CacheDir()
		if err != nil {
			return opts, err
		}
		opts.Dir = dir
	}
	return opts, nil
}
