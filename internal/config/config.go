package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	ListenAddr string `toml:"listen_addr"`
}

type LoggingConfig struct {
	Dir   string `toml:"dir"`
	Level string `toml:"level"` // "debug" | "info" | "warn" | "error"
}

type DBConfig struct {
	Path string `toml:"path"`
}

// AdminKey is one configured admin credential. The key set is read once at
// startup and is immutable afterwards; an empty set disables the entire
// admin interface.
type AdminKey struct {
	Username string `toml:"username"`
	Key      string `toml:"key"`
}

type Config struct {
	ProjectName string        `toml:"project_name"`
	StaticDir   string        `toml:"static_dir"`
	Server      ServerConfig  `toml:"server"`
	Logging     LoggingConfig `toml:"logging"`
	DB          DBConfig      `toml:"db"`
	AdminKeys   []AdminKey    `toml:"admin_keys"`
}

// Default returns the configuration used when a field is absent from the
// config file.
func Default() Config {
	return Config{
		ProjectName: "Hall of Incidents",
		StaticDir:   "./static",
		Server:      ServerConfig{ListenAddr: ":8080"},
		Logging:     LoggingConfig{Dir: "./logs", Level: "info"},
		DB:          DBConfig{Path: "./data/hallkeeper.db"},
	}
}

// Load reads the TOML config file at path on top of the defaults.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	for i, k := range cfg.AdminKeys {
		if strings.TrimSpace(k.Username) == "" || k.Key == "" {
			return Config{}, fmt.Errorf("config %s: admin_keys[%d] needs both username and key", path, i)
		}
	}

	return cfg, nil
}
