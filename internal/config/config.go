package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     uint   `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DbName   string `json:"db_name"`
}

func (p PostgresConfig) DbUrl() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		p.Host, p.Port, p.User, p.Password, p.DbName,
	)
}

type LogConfig struct {
	// Path of the rotated log file; empty disables file logging.
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode string `json:"mode"`
	Addr string `json:"addr"`
	// Postgres is optional: without it the server solves every request from
	// scratch and caches nothing.
	Postgres *PostgresConfig `json:"postgres,omitempty"`
	Log      LogConfig       `json:"log"`
}

func (c Config) Fields() logrus.Fields {
	fields := logrus.Fields{
		"mode":     c.Mode,
		"addr":     c.Addr,
		"log_path": c.Log.Path,
	}
	if c.Postgres != nil {
		fields["pg_host"] = c.Postgres.Host
		fields["pg_port"] = c.Postgres.Port
		fields["pg_user"] = c.Postgres.User
		fields["pg_db_name"] = c.Postgres.DbName
	}
	return fields
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}
