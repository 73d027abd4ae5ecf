package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the runtime configuration read from .dayplan.yaml and DAYPLAN_*
// environment variables.
type Config interface {
	// BasePath is the directory holding the key-value store.
	BasePath() string
	// LogLevel is one of debug, info, warn or error.
	LogLevel() string
	// SyncEventTasks keeps event-derived tasks when syncing the active preset.
	SyncEventTasks() bool
	// BackupLimit caps the backup ledger.
	BackupLimit() int
}

const (
	DefaultPath        = "~/.dayplan.db"
	DefaultLogLevel    = "warn"
	DefaultBackupLimit = 10
)

func LoadConfig() (Config, error) {
	viper.SetDefault("path", DefaultPath)
	viper.SetDefault("log-level", DefaultLogLevel)
	viper.SetDefault("sync-event-tasks", false)
	viper.SetDefault("backup-limit", DefaultBackupLimit)
	viper.SetConfigName(".dayplan") // .yaml is implicit
	viper.SetEnvPrefix("DAYPLAN")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYPLAN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding path: %w", err)
	}

	limit := viper.GetInt("backup-limit")
	if limit <= 0 {
		limit = DefaultBackupLimit
	}

	return &fileConfig{
		Path:       path,
		Level:      viper.GetString("log-level"),
		SyncEvents: viper.GetBool("sync-event-tasks"),
		Backups:    limit,
	}, nil
}

type fileConfig struct {
	Path       string `json:"path"`
	Level      string `json:"logLevel"`
	SyncEvents bool   `json:"syncEventTasks"`
	Backups    int    `json:"backupLimit"`
}

func (f *fileConfig) BasePath() string     { return f.Path }
func (f *fileConfig) LogLevel() string     { return f.Level }
func (f *fileConfig) SyncEventTasks() bool { return f.SyncEvents }
func (f *fileConfig) BackupLimit() int     { return f.Backups }

// StaticConfig is a Config with fixed values, for tests and callers that
// build configuration themselves.
type StaticConfig struct {
	Path       string
	Level      string
	SyncEvents bool
	Backups    int
}

func (s StaticConfig) BasePath() string     { return s.Path }
func (s StaticConfig) SyncEventTasks() bool { return s.SyncEvents }

func (s StaticConfig) LogLevel() string {
	if s.Level == "" {
		return DefaultLogLevel
	}
	return s.Level
}

func (s StaticConfig) BackupLimit() int {
	if s.Backups <= 0 {
		return DefaultBackupLimit
	}
	return s.Backups
}
