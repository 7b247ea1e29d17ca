package config

import (
	"os"
	"strings"
	"time"
)

// Config aggregates the crawler settings resolved from the environment.
// Instances are immutable after construction; every field carries either a
// resolved value or its declared default. Optional fields are nil when no
// source name supplied a value.
type Config struct {
	InternalTimeout        *time.Duration `yaml:"internal_timeout,omitempty" json:"internal_timeout,omitempty"`
	VerboseLog             bool           `yaml:"verbose_log" json:"verbose_log"`
	DefaultBrowserPath     *string        `yaml:"default_browser_path,omitempty" json:"default_browser_path,omitempty"`
	DisableBrowserSandbox  bool           `yaml:"disable_browser_sandbox" json:"disable_browser_sandbox"`
	LogLevel               LogLevel       `yaml:"log_level" json:"log_level"`
	DefaultDatasetID       string         `yaml:"default_dataset_id" json:"default_dataset_id"`
	DefaultKeyValueStoreID string         `yaml:"default_key_value_store_id" json:"default_key_value_store_id"`
	DefaultRequestQueueID  string         `yaml:"default_request_queue_id" json:"default_request_queue_id"`
	PurgeOnStart           bool           `yaml:"purge_on_start" json:"purge_on_start"`
	WriteMetadata          bool           `yaml:"write_metadata" json:"write_metadata"`
	PersistStorage         bool           `yaml:"persist_storage" json:"persist_storage"`
	PersistStateInterval   time.Duration  `yaml:"persist_state_interval" json:"persist_state_interval"`
	SystemInfoInterval     time.Duration  `yaml:"system_info_interval" json:"system_info_interval"`
	MaxUsedCPURatio        float64        `yaml:"max_used_cpu_ratio" json:"max_used_cpu_ratio"`
	MemoryMbytes           *int           `yaml:"memory_mbytes,omitempty" json:"memory_mbytes,omitempty"`
	AvailableMemoryRatio   float64        `yaml:"available_memory_ratio" json:"available_memory_ratio"`
	StorageDir             string         `yaml:"storage_dir" json:"storage_dir"`
	ChromeExecutablePath   *string        `yaml:"chrome_executable_path,omitempty" json:"chrome_executable_path,omitempty"`
	Headless               bool           `yaml:"headless" json:"headless"`
	Xvfb                   bool           `yaml:"xvfb" json:"xvfb"`
}

// defaultConfig returns a Config with the declared default for every field.
func defaultConfig() Config {
	return Config{
		VerboseLog:             false,
		DisableBrowserSandbox:  false,
		LogLevel:               LevelInfo,
		DefaultDatasetID:       "default",
		DefaultKeyValueStoreID: "default",
		DefaultRequestQueueID:  "default",
		PurgeOnStart:           true,
		WriteMetadata:          true,
		PersistStorage:         true,
		PersistStateInterval:   time.Minute,
		SystemInfoInterval:     time.Second,
		MaxUsedCPURatio:        0.95,
		AvailableMemoryRatio:   0.25,
		StorageDir:             "./storage",
		Headless:               true,
		Xvfb:                   false,
	}
}

// Load resolves configuration from the process environment. Construction is
// atomic: the first setting whose raw value cannot be coerced aborts the whole
// load and no partially populated Config is returned.
func Load() (Config, error) {
	return Resolve(environ())
}

// Resolve builds a Config from an explicit key-value mapping. Keys may be
// environment source names or canonical field names; for each setting the
// source names are checked in declared precedence order and the canonical
// name last, the first present key winning. Settings are independent of each
// other, so resolution order across fields does not matter.
func Resolve(values map[string]string) (Config, error) {
	cfg := defaultConfig()
	for _, s := range settings {
		raw, ok := lookup(values, s)
		if !ok {
			continue
		}
		if err := s.assign(&cfg, raw); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func lookup(values map[string]string, s setting) (string, bool) {
	for _, name := range s.sources {
		if raw, ok := values[name]; ok {
			return raw, true
		}
	}
	raw, ok := values[s.name]
	return raw, ok
}

// environ materialises the process environment as a mapping. A variable set to
// the empty string stays present, which keeps "empty" distinguishable from
// "absent" during resolution.
func environ() map[string]string {
	pairs := os.Environ()
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if name, value, ok := strings.Cut(pair, "="); ok {
			values[name] = value
		}
	}
	return values
}
