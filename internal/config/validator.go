package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/planview/internal/domain"
)

// SettingError is one rejected config value, keyed by its dotted path.
type SettingError struct {
	Key    string
	Value  any
	Reason string
}

func (e SettingError) Error() string {
	return fmt.Sprintf("%s=%q %s", e.Key, fmt.Sprint(e.Value), e.Reason)
}

// SettingErrors holds every rejected value from one Load.
type SettingErrors []SettingError

func (e SettingErrors) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return "invalid config: " + e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, se := range e {
		msgs[i] = "  " + se.Error()
	}
	return fmt.Sprintf("invalid config (%d settings):\n%s", len(e), strings.Join(msgs, "\n"))
}

// ValidLogLevels returns the accepted non-empty log levels.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate returns one SettingError per invalid value; nil means the config is usable.
func (c *Config) Validate() []SettingError {
	var errs []SettingError

	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, SettingError{Key: "db_path", Value: c.DBPath, Reason: "must not be empty"})
	}
	if c.DefaultTab != "" {
		if _, err := domain.ParseTab(c.DefaultTab); err != nil {
			errs = append(errs, SettingError{
				Key:   "default_tab",
				Value:   c.DefaultTab,
				Reason: "must be one of " + strings.Join(domain.TabNames(), ", "),
			})
		}
	}
	if strings.TrimSpace(c.Serve.Addr) == "" {
		errs = append(errs, SettingError{Key: "serve.addr", Value: c.Serve.Addr, Reason: "must not be empty"})
	}
	if c.Log.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Log.Level)) {
		errs = append(errs, SettingError{
			Key:   "log.level",
			Value:   c.Log.Level,
			Reason: "must be one of " + strings.Join(ValidLogLevels(), ", ") + " or empty",
		})
	}

	return errs
}
