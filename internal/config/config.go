package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/mapgen"
)

// Config holds all configuration for the application
type Config struct {
	Mapgen      MapgenConfig      `mapstructure:"mapgen"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// MapgenConfig holds map generation and HQ placement settings
type MapgenConfig struct {
	Width                     int                `mapstructure:"width"`
	Height                    int                `mapstructure:"height"`
	Players                   int                `mapstructure:"players"`
	Topology                  string             `mapstructure:"topology"`
	Connectivity              int                `mapstructure:"connectivity"`
	Seed                      int64              `mapstructure:"seed"`
	Retries                   int                `mapstructure:"retries"`
	PlayerDistanceToMountains int                `mapstructure:"player_distance_to_mountains"`
	MountainVeins             MountainVeinConfig `mapstructure:"mountain_veins"`
	Lakes                     LakeConfig         `mapstructure:"lakes"`
	Selector                  SelectorConfig     `mapstructure:"selector"`
}

// MountainVeinConfig holds mountain vein generation settings
type MountainVeinConfig struct {
	Ratio          int     `mapstructure:"ratio"`
	MinLength      int     `mapstructure:"min_length"`
	MaxLengthRatio float64 `mapstructure:"max_length_ratio"`
}

// LakeConfig holds lake generation settings
type LakeConfig struct {
	Ratio   int `mapstructure:"ratio"`
	MaxSize int `mapstructure:"max_size"`
}

// SelectorConfig holds the HQ candidate selector tunables
type SelectorConfig struct {
	MinObstacleDistance int `mapstructure:"min_obstacle_distance"`
	MaxObstacleDistance int `mapstructure:"max_obstacle_distance"`
	MountainTolerance   int `mapstructure:"mountain_tolerance"`
	MinPlayerDistance   int `mapstructure:"min_player_distance"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	RenderMap bool `mapstructure:"render_map"`
	Color     bool `mapstructure:"color"`
}

// maxPlayers is the number of players the renderer can tell apart
const maxPlayers = 8

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Map defaults
	v.SetDefault("mapgen.width", 30)
	v.SetDefault("mapgen.height", 20)
	v.SetDefault("mapgen.players", 2)
	v.SetDefault("mapgen.topology", "bounded")
	v.SetDefault("mapgen.connectivity", 4)
	v.SetDefault("mapgen.seed", 0)
	v.SetDefault("mapgen.retries", 10)
	v.SetDefault("mapgen.player_distance_to_mountains", 0)
	v.SetDefault("mapgen.mountain_veins.ratio", 50)
	v.SetDefault("mapgen.mountain_veins.min_length", 3)
	v.SetDefault("mapgen.mountain_veins.max_length_ratio", 0.25)
	v.SetDefault("mapgen.lakes.ratio", 200)
	v.SetDefault("mapgen.lakes.max_size", 12)

	// Selector defaults
	v.SetDefault("mapgen.selector.min_obstacle_distance", 2)
	v.SetDefault("mapgen.selector.max_obstacle_distance", 4)
	v.SetDefault("mapgen.selector.mountain_tolerance", 5)
	v.SetDefault("mapgen.selector.min_player_distance", 0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Development defaults
	v.SetDefault("development.render_map", true)
	v.SetDefault("development.color", true)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/mapgen")
	}

	// MAPGEN_MAPGEN_WIDTH overrides mapgen.width
	v.SetEnvPrefix("MAPGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// An explicit path that cannot be read falls back to defaults. In the default
		// locations only a missing file is ok.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath == "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig loads environment-specific config overlay
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return Validate(cfg)
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	_ = v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives the
// validation result of the reloaded values; an invalid file leaves the previous
// config in place.
func WatchConfig(onChange func(*Config, error)) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		err := v.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err == nil {
			cfg = next
		}
		if onChange != nil {
			onChange(cfg, err)
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	m := c.Mapgen
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("mapgen width and height must be positive")
	}
	if m.Players < 1 || m.Players > maxPlayers {
		return fmt.Errorf("mapgen.players must be between 1 and %d", maxPlayers)
	}
	topology, err := mapgen.ParseTopology(m.Topology)
	if err != nil {
		return fmt.Errorf("mapgen.topology: %w", err)
	}
	switch mapgen.Connectivity(m.Connectivity) {
	case mapgen.Conn4, mapgen.Conn6, mapgen.Conn8:
	default:
		return fmt.Errorf("mapgen.connectivity must be 4, 6 or 8")
	}
	if topology == mapgen.Toroidal && mapgen.Connectivity(m.Connectivity) == mapgen.Conn6 && m.Height%2 == 1 {
		return fmt.Errorf("mapgen.height must be even for a toroidal hex map: %w", core.ErrInvalidSize)
	}
	if m.Retries < 0 {
		return fmt.Errorf("mapgen.retries must be non-negative")
	}
	if m.PlayerDistanceToMountains < 0 {
		return fmt.Errorf("mapgen.player_distance_to_mountains must be non-negative")
	}

	// Terrain
	if m.MountainVeins.Ratio < 0 {
		return fmt.Errorf("mapgen.mountain_veins.ratio must be non-negative")
	}
	if m.MountainVeins.MinLength < 1 {
		return fmt.Errorf("mapgen.mountain_veins.min_length must be at least 1")
	}
	if m.MountainVeins.MaxLengthRatio <= 0 || m.MountainVeins.MaxLengthRatio > 1 {
		return fmt.Errorf("mapgen.mountain_veins.max_length_ratio must be between 0 and 1")
	}
	if m.Lakes.Ratio < 0 {
		return fmt.Errorf("mapgen.lakes.ratio must be non-negative")
	}
	if m.Lakes.MaxSize < 0 {
		return fmt.Errorf("mapgen.lakes.max_size must be non-negative")
	}

	// Selector
	s := m.Selector
	if s.MinObstacleDistance < 0 || s.MaxObstacleDistance < s.MinObstacleDistance {
		return fmt.Errorf("mapgen.selector obstacle distance band [%d, %d] is invalid",
			s.MinObstacleDistance, s.MaxObstacleDistance)
	}
	if s.MountainTolerance < 0 {
		return fmt.Errorf("mapgen.selector.mountain_tolerance must be non-negative")
	}
	if s.MinPlayerDistance < 0 {
		return fmt.Errorf("mapgen.selector.min_player_distance must be non-negative")
	}

	// Logging
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}

// ToMapConfig converts the mapgen section into a generator configuration
func (m MapgenConfig) ToMapConfig() (mapgen.MapConfig, error) {
	topology, err := mapgen.ParseTopology(m.Topology)
	if err != nil {
		return mapgen.MapConfig{}, err
	}

	mc := mapgen.DefaultMapConfig(m.Width, m.Height, m.Players)
	mc.Topology = topology
	mc.Conn = mapgen.Connectivity(m.Connectivity)
	mc.Retries = m.Retries
	mc.PlayerDistanceToMountains = uint32(max(m.PlayerDistanceToMountains, 0))

	area := m.Width * m.Height
	mc.NumMountainVeins = 0
	if m.MountainVeins.Ratio > 0 {
		mc.NumMountainVeins = area / m.MountainVeins.Ratio
	}
	mc.MinVeinLength = m.MountainVeins.MinLength
	mc.MaxVeinLength = max(int(float64(m.Width)*m.MountainVeins.MaxLengthRatio), m.MountainVeins.MinLength)

	mc.NumLakes = 0
	if m.Lakes.Ratio > 0 {
		mc.NumLakes = area / m.Lakes.Ratio
	}
	mc.MaxLakeSize = m.Lakes.MaxSize

	mc.Selector = mapgen.SelectorParams{
		MinObstacleDistance: uint32(max(m.Selector.MinObstacleDistance, 0)),
		MaxObstacleDistance: uint32(max(m.Selector.MaxObstacleDistance, 0)),
		MountainTolerance:   uint32(max(m.Selector.MountainTolerance, 0)),
		MinPlayerDistance:   uint32(max(m.Selector.MinPlayerDistance, 0)),
	}

	if err := mc.Validate(); err != nil {
		return mapgen.MapConfig{}, err
	}
	return mc, nil
}
