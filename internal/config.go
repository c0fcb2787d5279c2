package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration. It is built once at
// startup, validated eagerly, and injected by reference into components;
// nothing reads the environment after startup.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Webhook  WebhookConfig     `yaml:"webhook"`
	Media    MediaConfig       `yaml:"media"`
	Analysis AnalysisConfig    `yaml:"analysis"`
	SQLite   SQLiteConfig      `yaml:"sqlite"`
	Worker   WorkerConfig      `yaml:"worker"`
	Calendar CalendarConfig    `yaml:"calendar"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Webhook.Validate(); err != nil {
		return err
	}
	if err := c.Media.Validate(); err != nil {
		return err
	}
	if err := c.SQLite.Validate(); err != nil {
		return err
	}
	if err := c.Worker.Validate(); err != nil {
		return err
	}
	return c.Calendar.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level  `yaml:"log_level"`
	HTTP     HTTPConfig  `yaml:"http"`
	Tasks    TasksConfig `yaml:"tasks"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	return c.Tasks.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// TasksConfig bounds the detached background extraction work.
type TasksConfig struct {
	Limit int `yaml:"limit"`
}

// Validate validates the task configuration.
func (c *TasksConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Limit, validation.Required, validation.Min(1), validation.Max(64)),
	)
}

// WebhookConfig holds the shared secret webhook deliveries must present.
type WebhookConfig struct {
	Secret string `yaml:"secret"`
}

// Validate validates the webhook configuration.
func (c *WebhookConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Secret, validation.Required),
	)
}

// MediaConfig holds the WAHA media retrieval settings. Host replaces the
// localhost segment of delivered media URLs.
type MediaConfig struct {
	Host   string `yaml:"host"`
	APIKey string `yaml:"api_key"`
}

// Validate validates the media configuration.
func (c *MediaConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.APIKey, validation.Required),
	)
}

// AnalysisConfig holds document-analysis settings. An empty region defers
// to the AWS SDK's default resolution chain.
type AnalysisConfig struct {
	Region string `yaml:"region"`
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// WorkerConfig identifies whose shifts are extracted and served. Name is
// used on synthesized placeholder shifts.
type WorkerConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Validate validates the worker configuration.
func (c *WorkerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ID, validation.Required),
	)
}

// CalendarConfig holds placeholder synthesis settings. Weekdays are ISO
// weekday numbers (1=Monday..7=Sunday) on which a future shift is assumed.
type CalendarConfig struct {
	Weekdays []int `yaml:"weekdays"`
}

// Validate validates the calendar configuration.
func (c *CalendarConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Weekdays, validation.Required,
			validation.Each(validation.Min(1), validation.Max(7))),
	); err != nil {
		return err
	}
	seen := make(map[int]bool, len(c.Weekdays))
	for _, d := range c.Weekdays {
		if seen[d] {
			return fmt.Errorf("calendar: duplicate weekday %d", d)
		}
		seen[d] = true
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
// Required secrets and identifiers have no defaults; validation rejects a
// config that does not set them.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 3069,
			},
			Tasks: TasksConfig{
				Limit: 4,
			},
		},
		SQLite: SQLiteConfig{
			Path: "./rooster.db",
		},
	}
}
