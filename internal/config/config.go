package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	Mode              string        `mapstructure:"mode" yaml:"mode"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	StaticDir         string        `mapstructure:"static_dir" yaml:"static_dir"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`

	// MaxMessageBytes caps a single inbound WebSocket frame. Audio blobs ride
	// in these frames, so it is far above a typical chat limit.
	MaxMessageBytes    int64 `mapstructure:"max_message_bytes" yaml:"max_message_bytes"`
	RateLimitPerMinute int   `mapstructure:"rate_limit_per_minute" yaml:"rate_limit_per_minute"`
	EventBuffer        int   `mapstructure:"event_buffer" yaml:"event_buffer"`

	AudioRetention   time.Duration `mapstructure:"audio_retention" yaml:"audio_retention"`
	TextRetention    time.Duration `mapstructure:"text_retention" yaml:"text_retention"`
	TextHistoryLimit int           `mapstructure:"text_history_limit" yaml:"text_history_limit"`

	InviteBaseURL  string   `mapstructure:"invite_base_url" yaml:"invite_base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:               ":3000",
		Mode:               "release",
		LogLevel:           "info",
		StaticDir:          "./client/build",
		ReadHeaderTimeout:  5 * time.Second,
		ShutdownTimeout:    5 * time.Second,
		MaxMessageBytes:    4 << 20,
		RateLimitPerMinute: 600,
		EventBuffer:        64,
		AudioRetention:     time.Hour,
		TextRetention:      time.Hour,
		TextHistoryLimit:   500,
		AllowedOrigins:     []string{"*"},
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.Mode != "" {
		c.Mode = other.Mode
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.StaticDir != "" {
		c.StaticDir = other.StaticDir
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.MaxMessageBytes != 0 {
		c.MaxMessageBytes = other.MaxMessageBytes
	}
	if other.RateLimitPerMinute != 0 {
		c.RateLimitPerMinute = other.RateLimitPerMinute
	}
	if other.EventBuffer != 0 {
		c.EventBuffer = other.EventBuffer
	}
	if other.AudioRetention != 0 {
		c.AudioRetention = other.AudioRetention
	}
	if other.TextRetention != 0 {
		c.TextRetention = other.TextRetention
	}
	if other.TextHistoryLimit != 0 {
		c.TextHistoryLimit = other.TextHistoryLimit
	}
	if other.InviteBaseURL != "" {
		c.InviteBaseURL = other.InviteBaseURL
	}
	if len(other.AllowedOrigins) > 0 {
		c.AllowedOrigins = other.AllowedOrigins
	}
}
