package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	QuestionsDir      string        `mapstructure:"questions_dir" yaml:"questions_dir"`
	DatabasePath      string        `mapstructure:"database_path" yaml:"database_path"`
	RoundAdvanceDelay time.Duration `mapstructure:"round_advance_delay" yaml:"round_advance_delay"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":4000",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		QuestionsDir:      "questions",
		DatabasePath:      "matches.db",
		RoundAdvanceDelay: 5 * time.Second,
	}
}
