package internal

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.Webhook.Secret = "hunter2"
	cfg.Media.Host = "waha.internal"
	cfg.Media.APIKey = "key"
	cfg.Worker.ID = "b1"
	cfg.Worker.Name = "Ann"
	cfg.Calendar.Weekdays = []int{1, 3, 5}
	return cfg
}

func TestConfigValid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestConfigMissingSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Webhook.Secret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing webhook secret should fail validation")
	}
}

func TestConfigMissingWorkerID(t *testing.T) {
	cfg := validConfig()
	cfg.Worker.ID = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing worker id should fail validation")
	}
}

func TestConfigMissingMediaSettings(t *testing.T) {
	cfg := validConfig()
	cfg.Media.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing media api key should fail validation")
	}
}

func TestCalendarWeekdaysOutOfRange(t *testing.T) {
	for _, bad := range [][]int{{0}, {8}, {1, 9}, {-1, 3}} {
		cfg := validConfig()
		cfg.Calendar.Weekdays = bad
		if err := cfg.Validate(); err == nil {
			t.Errorf("weekdays %v should fail validation", bad)
		}
	}
}

func TestCalendarWeekdaysDuplicates(t *testing.T) {
	cfg := validConfig()
	cfg.Calendar.Weekdays = []int{1, 3, 1}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("duplicate weekdays should fail validation")
	}
	if !strings.Contains(err.Error(), "duplicate weekday") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCalendarWeekdaysRequired(t *testing.T) {
	cfg := validConfig()
	cfg.Calendar.Weekdays = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty weekday set should fail validation")
	}
}

func TestTasksLimitBounds(t *testing.T) {
	cfg := validConfig()
	cfg.App.Tasks.Limit = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero task limit should fail validation")
	}
	cfg.App.Tasks.Limit = 65
	if err := cfg.Validate(); err == nil {
		t.Fatal("oversized task limit should fail validation")
	}
}

func TestHTTPPortBounds(t *testing.T) {
	cfg := validConfig()
	cfg.App.HTTP.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero port should fail validation")
	}
	if got := validConfig().App.HTTP.Address(); got != ":3069" {
		t.Errorf("Address() = %q", got)
	}
}
