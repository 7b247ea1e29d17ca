package config

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// LogLevel is the severity threshold for crawler logging.
type LogLevel string

const (
	LevelDebug    LogLevel = "DEBUG"
	LevelInfo     LogLevel = "INFO"
	LevelWarning  LogLevel = "WARNING"
	LevelError    LogLevel = "ERROR"
	LevelCritical LogLevel = "CRITICAL"
)

var logLevels = []string{
	string(LevelDebug),
	string(LevelInfo),
	string(LevelWarning),
	string(LevelError),
	string(LevelCritical),
}

// ParseLogLevel normalises raw to upper case and validates it against the
// fixed level set.
func ParseLogLevel(raw string) (LogLevel, error) {
	normalized := strings.ToUpper(raw)
	for _, level := range logLevels {
		if level == normalized {
			return LogLevel(level), nil
		}
	}
	return "", &EnumValueError{Field: "log_level", Value: raw, Allowed: logLevels}
}

// setting describes one configuration field: its canonical name, the
// environment source names that can supply it (highest precedence first) and
// the coercion applied to the winning raw value.
type setting struct {
	name    string
	sources []string
	assign  func(cfg *Config, raw string) error
}

// settings is the schema consumed by Resolve. Several fields accept two or
// three interchangeable prefixes reflecting legacy hosting-platform naming
// (actor_, apify_) next to the project's own (crawlee_).
var settings = []setting{
	{
		name:    "internal_timeout",
		sources: []string{"crawlee_internal_timeout"},
		assign: func(cfg *Config, raw string) error {
			d, err := parseSeconds("internal_timeout", raw)
			if err != nil {
				return err
			}
			cfg.InternalTimeout = &d
			return nil
		},
	},
	{
		name:    "verbose_log",
		sources: []string{"crawlee_verbose_log"},
		assign: func(cfg *Config, raw string) error {
			return assignBool(&cfg.VerboseLog, "verbose_log", raw)
		},
	},
	{
		name:    "default_browser_path",
		sources: []string{"apify_default_browser_path", "crawlee_default_browser_path"},
		assign: func(cfg *Config, raw string) error {
			cfg.DefaultBrowserPath = &raw
			return nil
		},
	},
	{
		name:    "disable_browser_sandbox",
		sources: []string{"apify_disable_browser_sandbox", "crawlee_disable_browser_sandbox"},
		assign: func(cfg *Config, raw string) error {
			return assignBool(&cfg.DisableBrowserSandbox, "disable_browser_sandbox", raw)
		},
	},
	{
		name:    "log_level",
		sources: []string{"apify_log_level", "crawlee_log_level"},
		assign: func(cfg *Config, raw string) error {
			level, err := ParseLogLevel(raw)
			if err != nil {
				return err
			}
			cfg.LogLevel = level
			return nil
		},
	},
	{
		name:    "default_dataset_id",
		sources: []string{"actor_default_dataset_id", "apify_default_dataset_id", "crawlee_default_dataset_id"},
		assign: func(cfg *Config, raw string) error {
			cfg.DefaultDatasetID = raw
			return nil
		},
	},
	{
		name:    "default_key_value_store_id",
		sources: []string{"actor_default_key_value_store_id", "apify_default_key_value_store_id", "crawlee_default_key_value_store_id"},
		assign: func(cfg *Config, raw string) error {
			cfg.DefaultKeyValueStoreID = raw
			return nil
		},
	},
	{
		name:    "default_request_queue_id",
		sources: []string{"actor_default_request_queue_id", "apify_default_request_queue_id", "crawlee_default_request_queue_id"},
		assign: func(cfg *Config, raw string) error {
			cfg.DefaultRequestQueueID = raw
			return nil
		},
	},
	{
		name:    "purge_on_start",
		sources: []string{"apify_purge_on_start", "crawlee_purge_on_start"},
		assign: func(cfg *Config, raw string) error {
			return assignBool(&cfg.PurgeOnStart, "purge_on_start", raw)
		},
	},
	{
		name:    "write_metadata",
		sources: []string{"crawlee_write_metadata"},
		assign: func(cfg *Config, raw string) error {
			return assignBool(&cfg.WriteMetadata, "write_metadata", raw)
		},
	},
	{
		name:    "persist_storage",
		sources: []string{"apify_persist_storage", "crawlee_persist_storage"},
		assign: func(cfg *Config, raw string) error {
			return assignBool(&cfg.PersistStorage, "persist_storage", raw)
		},
	},
	{
		name:    "persist_state_interval",
		sources: []string{"apify_persist_state_interval_millis", "crawlee_persist_state_interval_millis"},
		assign: func(cfg *Config, raw string) error {
			d, err := parseMillis("persist_state_interval", raw)
			if err != nil {
				return err
			}
			cfg.PersistStateInterval = d
			return nil
		},
	},
	{
		name:    "system_info_interval",
		sources: []string{"apify_system_info_interval_millis", "crawlee_system_info_interval_millis"},
		assign: func(cfg *Config, raw string) error {
			d, err := parseMillis("system_info_interval", raw)
			if err != nil {
				return err
			}
			cfg.SystemInfoInterval = d
			return nil
		},
	},
	{
		name:    "max_used_cpu_ratio",
		sources: []string{"apify_max_used_cpu_ratio", "crawlee_max_used_cpu_ratio"},
		assign: func(cfg *Config, raw string) error {
			return assignFloat(&cfg.MaxUsedCPURatio, "max_used_cpu_ratio", raw)
		},
	},
	{
		name:    "memory_mbytes",
		sources: []string{"actor_memory_mbytes", "apify_memory_mbytes", "crawlee_memory_mbytes"},
		assign: func(cfg *Config, raw string) error {
			n, err := parseInt("memory_mbytes", raw)
			if err != nil {
				return err
			}
			cfg.MemoryMbytes = &n
			return nil
		},
	},
	{
		name:    "available_memory_ratio",
		sources: []string{"apify_available_memory_ratio", "crawlee_available_memory_ratio"},
		assign: func(cfg *Config, raw string) error {
			return assignFloat(&cfg.AvailableMemoryRatio, "available_memory_ratio", raw)
		},
	},
	{
		name:    "storage_dir",
		sources: []string{"apify_local_storage_dir", "crawlee_storage_dir"},
		assign: func(cfg *Config, raw string) error {
			cfg.StorageDir = raw
			return nil
		},
	},
	{
		name:    "chrome_executable_path",
		sources: []string{"apify_chrome_executable_path", "crawlee_chrome_executable_path"},
		assign: func(cfg *Config, raw string) error {
			cfg.ChromeExecutablePath = &raw
			return nil
		},
	},
	{
		name:    "headless",
		sources: []string{"apify_headless", "crawlee_headless"},
		assign: func(cfg *Config, raw string) error {
			return assignBool(&cfg.Headless, "headless", raw)
		},
	},
	{
		name:    "xvfb",
		sources: []string{"apify_xvfb", "crawlee_xvfb"},
		assign: func(cfg *Config, raw string) error {
			return assignBool(&cfg.Xvfb, "xvfb", raw)
		},
	},
}

func assignBool(dst *bool, field, raw string) error {
	value, err := parseBool(field, raw)
	if err != nil {
		return err
	}
	*dst = value
	return nil
}

func assignFloat(dst *float64, field, raw string) error {
	value, err := parseFloat(field, raw)
	if err != nil {
		return err
	}
	*dst = value
	return nil
}

func parseBool(field, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, &CoercionError{Field: field, Value: raw, Type: "bool"}
}

func parseInt(field, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &CoercionError{Field: field, Value: raw, Type: "int", Err: err}
	}
	return value, nil
}

func parseFloat(field, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &CoercionError{Field: field, Value: raw, Type: "float", Err: err}
	}
	return value, nil
}

// parseMillis interprets raw as an integer count of milliseconds.
func parseMillis(field, raw string) (time.Duration, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &CoercionError{Field: field, Value: raw, Type: "duration (milliseconds)", Err: err}
	}
	return time.Duration(value) * time.Millisecond, nil
}

// parseSeconds interprets raw as a number of seconds, fractions allowed.
func parseSeconds(field, raw string) (time.Duration, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &CoercionError{Field: field, Value: raw, Type: "duration (seconds)", Err: err}
	}
	return time.Duration(value * float64(time.Second)), nil
}

var settingPrefixes = []string{"actor_", "apify_", "crawlee_"}

// UnknownSettingVars returns the names from environ (in os.Environ form) that
// carry one of the recognised settings prefixes but match no declared source
// name. Useful for flagging typos in deployment manifests.
func UnknownSettingVars(environ []string) []string {
	known := make(map[string]struct{})
	for _, s := range settings {
		for _, name := range s.sources {
			known[name] = struct{}{}
		}
	}

	var unknown []string
	for _, pair := range environ {
		name, _, _ := strings.Cut(pair, "=")
		if !hasSettingPrefix(name) {
			continue
		}
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func hasSettingPrefix(name string) bool {
	for _, prefix := range settingPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
