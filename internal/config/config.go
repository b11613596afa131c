package config

import (
	"errors"
	"fmt"
	"io/fs"

	"coup-toolbox/internal/player"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// GameConfig holds the table settings for a game of Coup.
type GameConfig struct {
	MinPlayers int      `mapstructure:"min_players"`
	MaxPlayers int      `mapstructure:"max_players"`
	Roles      []string `mapstructure:"roles"`
	LogLevel   string   `mapstructure:"log_level"`
}

// Default returns the settings used when no file is present.
func Default() *GameConfig {
	var ids []string
	for _, r := range player.DistinguishedRoles() {
		ids = append(ids, r.String())
	}
	return &GameConfig{
		MinPlayers: 2,
		MaxPlayers: 6,
		Roles:      ids,
		LogLevel:   "info",
	}
}

// Load reads the configuration file at path, falling back to defaults when it is missing.
// Flags that were set on the command line override file values.
func Load(path string, flags *pflag.FlagSet) (*GameConfig, error) {
	def := Default()
	v := viper.New()
	v.SetDefault("min_players", def.MinPlayers)
	v.SetDefault("max_players", def.MaxPlayers)
	v.SetDefault("roles", def.Roles)
	v.SetDefault("log_level", def.LogLevel)

	if flags != nil {
		if f := flags.Lookup("loglevel"); f != nil {
			if err := v.BindPFlag("log_level", f); err != nil {
				return nil, err
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg GameConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks player bounds and the role pool.
func (c *GameConfig) Validate() error {
	if c.MinPlayers < 2 {
		return fmt.Errorf("min_players must be at least 2, got %d", c.MinPlayers)
	}
	if c.MaxPlayers < c.MinPlayers {
		return fmt.Errorf("max_players (%d) is below min_players (%d)", c.MaxPlayers, c.MinPlayers)
	}
	if len(c.Roles) == 0 {
		return errors.New("roles must not be empty")
	}
	_, err := c.RolePool()
	return err
}

// RolePool resolves the configured role identifiers.
func (c *GameConfig) RolePool() ([]player.Role, error) {
	pool := make([]player.Role, 0, len(c.Roles))
	for _, id := range c.Roles {
		r, err := player.ParseRole(id)
		if err != nil {
			return nil, fmt.Errorf("roles: %w", err)
		}
		pool = append(pool, r)
	}
	return pool, nil
}
