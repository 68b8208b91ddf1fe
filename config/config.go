// Package config loads the world description for seaway binaries.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/orcasim/seaway/geodesy"
	"github.com/orcasim/seaway/logging"
	"github.com/orcasim/seaway/watermask"
)

// Config holds all application configuration.
type Config struct {
	World WorldConfig `mapstructure:"world"`
	Mask  MaskConfig  `mapstructure:"mask"`
	Log   LogConfig   `mapstructure:"log"`
}

// PointConfig is a geographic corner in degrees.
type PointConfig struct {
	Lon float64 `mapstructure:"lon"`
	Lat float64 `mapstructure:"lat"`
}

// GeoPoint converts the corner to a geodesy point.
func (p PointConfig) GeoPoint() geodesy.GeoPoint {
	return geodesy.GeoPoint{Lon: p.Lon, Lat: p.Lat}
}

// WorldConfig describes the rectangular world. A zero WidthKm or HeightKm
// is replaced by the geodetic length of the corresponding side.
type WorldConfig struct {
	LowerLeft  PointConfig `mapstructure:"lower_left"`
	LowerRight PointConfig `mapstructure:"lower_right"`
	UpperLeft  PointConfig `mapstructure:"upper_left"`
	WidthKm    float64     `mapstructure:"width_km"`
	HeightKm   float64     `mapstructure:"height_km"`
	KmPerCell  float64     `mapstructure:"km_per_cell"`
}

// MaskConfig holds the land/water map, north row first.
type MaskConfig struct {
	LandThreshold int      `mapstructure:"land_threshold"`
	Connectivity  int      `mapstructure:"connectivity"`
	Rows          []string `mapstructure:"rows"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from path, or when path is empty from an optional
// seaway.yaml in . or ./configs, then applies environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("world.lower_left.lon", 0.0)
	v.SetDefault("world.lower_left.lat", 0.0)
	v.SetDefault("world.lower_right.lon", 0.0)
	v.SetDefault("world.lower_right.lat", 0.0)
	v.SetDefault("world.upper_left.lon", 0.0)
	v.SetDefault("world.upper_left.lat", 0.0)
	v.SetDefault("world.width_km", 0.0)
	v.SetDefault("world.height_km", 0.0)
	v.SetDefault("world.km_per_cell", 1.0)
	v.SetDefault("mask.land_threshold", 1)
	v.SetDefault("mask.connectivity", 8)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("seaway")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		_ = v.ReadInConfig() // OK if missing
	}

	// Environment variables: SEAWAY_WORLD_KM_PER_CELL → world.km_per_cell
	v.SetEnvPrefix("SEAWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
// Geometric invariants of the extent are checked by Extent.
func (c *Config) Validate() error {
	var errs []string

	if c.World.KmPerCell <= 0 {
		errs = append(errs, fmt.Sprintf("world.km_per_cell must be positive, got %g", c.World.KmPerCell))
	}
	if c.World.WidthKm < 0 {
		errs = append(errs, fmt.Sprintf("world.width_km must not be negative, got %g", c.World.WidthKm))
	}
	if c.World.HeightKm < 0 {
		errs = append(errs, fmt.Sprintf("world.height_km must not be negative, got %g", c.World.HeightKm))
	}
	if c.World.LowerLeft == c.World.LowerRight || c.World.LowerLeft == c.World.UpperLeft {
		errs = append(errs, "world corners must be distinct")
	}
	if len(c.Mask.Rows) == 0 {
		errs = append(errs, "mask.rows is required")
	}
	if c.Mask.Connectivity != 4 && c.Mask.Connectivity != 8 {
		errs = append(errs, fmt.Sprintf("mask.connectivity must be 4 or 8, got %d", c.Mask.Connectivity))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}
	if f := strings.ToLower(c.Log.Format); f != "json" && f != "text" {
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Extent builds the grid extent. Errors wrap geodesy.ErrInvalidExtent and
// are fatal to a simulation run.
func (c *Config) Extent() (*geodesy.GridExtent, error) {
	w := c.World
	ll, lr, ul := w.LowerLeft.GeoPoint(), w.LowerRight.GeoPoint(), w.UpperLeft.GeoPoint()
	width, height := w.WidthKm, w.HeightKm
	if width == 0 {
		width = geodesy.DistanceKm(ll, lr)
	}
	if height == 0 {
		height = geodesy.DistanceKm(ll, ul)
	}
	return geodesy.NewGridExtent(ll, lr, ul, width, height, w.KmPerCell)
}

// Mask builds the water mask from mask.rows.
func (c *Config) Mask() (*watermask.Mask, error) {
	values, err := watermask.ParseRows(c.Mask.Rows)
	if err != nil {
		return nil, fmt.Errorf("mask.rows: %w", err)
	}
	opts := watermask.DefaultGridOptions()
	opts.LandThreshold = c.Mask.LandThreshold
	if c.Mask.Connectivity == 4 {
		opts.Conn = watermask.Conn4
	}
	m, err := watermask.NewMask(values, opts)
	if err != nil {
		return nil, fmt.Errorf("mask.rows: %w", err)
	}
	return m, nil
}
