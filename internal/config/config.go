// Package config loads the command-line configuration: a TOML file on top of
// built-in defaults, then RESUMEPDF_* environment variables.
//
// A configuration file looks like:
//
//	layout = "modern-2"
//	page_size = "letter"
//	log_level = "debug"
//	resource_paths = ["assets"]
//
//	[padding]
//	top = 50
//
//	[styles.all.header]
//	color = "#0056d2"
//
//	[styles."modern-2".name]
//	font-size = 30
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/gompdf/resumepdf/internal/pagination"
	"github.com/gompdf/resumepdf/internal/style"
	"github.com/gompdf/resumepdf/pkg/api"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RESUMEPDF_"

// AllLayouts is the styles table applied to every layout.
const AllLayouts = "all"

// Config holds the settings of one CLI run.
type Config struct {
	Layout          string   `toml:"layout"`
	PageSize        string   `toml:"page_size"`
	Padding         Padding  `toml:"padding"`
	LogLevel        string   `toml:"log_level"`
	StrictResources bool     `toml:"strict_resources"`
	ResourcePaths   []string `toml:"resource_paths"`
	StyleSheets     []string `toml:"style_sheets"`
	// Styles maps "all" or a layout key to slot property tables.
	Styles map[string]map[string]map[string]any `toml:"styles"`
}

// Padding is the page padding in points.
type Padding struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Layout:   "classical-1",
		PageSize: "a4",
		Padding: Padding{
			Top:    pagination.DefaultTopPadding,
			Right:  pagination.DefaultSidePadding,
			Bottom: pagination.DefaultBottomMargin,
			Left:   pagination.DefaultSidePadding,
		},
		LogLevel: "info",
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path skips the file. Relative resource paths and style sheets in the
// file are resolved against its directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
		}
		dir := filepath.Dir(path)
		cfg.ResourcePaths = resolve(dir, cfg.ResourcePaths)
		cfg.StyleSheets = resolve(dir, cfg.StyleSheets)
	}
	if err := overrideWithEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolve(dir string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) || strings.Contains(p, "://") || strings.HasPrefix(p, "data:") {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(dir, p)
	}
	return out
}

func overrideWithEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LAYOUT"); ok && v != "" {
		cfg.Layout = v
	}
	if v, ok := lookup(EnvPrefix + "PAGE_SIZE"); ok && v != "" {
		cfg.PageSize = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "STRICT_RESOURCES"); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sSTRICT_RESOURCES %q: %w", EnvPrefix, v, err)
		}
		cfg.StrictResources = strict
	}
	if v, ok := lookup(EnvPrefix + "RESOURCE_PATHS"); ok && v != "" {
		cfg.ResourcePaths = append(cfg.ResourcePaths, filepath.SplitList(v)...)
	}
	return nil
}

// Key parses the configured layout.
func (c *Config) Key() (style.Key, error) {
	return style.ParseKey(c.Layout)
}

// Level parses the configured log level.
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Overrides returns the style tables for key: the "all" table first, then
// the table of the layout itself.
func (c *Config) Overrides(key style.Key) []style.Overrides {
	var out []style.Overrides
	for _, name := range []string{AllLayouts, key.String()} {
		if raw, ok := c.Styles[name]; ok {
			out = append(out, style.FromRaw(raw))
		}
	}
	return out
}

// Options builds generator options for key on top of the API defaults.
func (c *Config) Options(key style.Key, logger *log.Logger) (api.Options, error) {
	w, h, err := api.PageSizeByName(c.PageSize)
	if err != nil {
		return api.Options{}, err
	}
	opts := api.DefaultOptions()
	for _, opt := range []api.Option{
		api.WithPageSize(w, h),
		api.WithPadding(c.Padding.Top, c.Padding.Right, c.Padding.Bottom, c.Padding.Left),
		api.WithStrictResources(c.StrictResources),
		api.WithLogger(logger),
	} {
		opt(&opts)
	}
	for _, p := range c.ResourcePaths {
		api.WithResourcePath(p)(&opts)
	}
	for _, o := range c.Overrides(key) {
		api.WithStyleOverrides(o)(&opts)
	}
	for _, s := range c.StyleSheets {
		api.WithStyleSheet(s)(&opts)
	}
	return opts, opts.Validate()
}
