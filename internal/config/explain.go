package config

import (
	"fmt"
	"sort"
)

// Explain returns the effective value of a config key and where it came
// from.
func Explain(res *LoadResult, key string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if key == "" {
		return nil, Source{}, fmt.Errorf("key is empty")
	}

	values := res.Config.values()
	value, ok := values[key]
	if !ok {
		return nil, Source{}, fmt.Errorf("unknown config key %q (known: %v)", key, Keys())
	}

	if src, ok := res.Sources[key]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

// Keys lists every config key in sorted order.
func Keys() []string {
	keys := make([]string, 0, 8)
	for k := range (&Config{}).values() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Config) values() map[string]any {
	return map[string]any{
		"start_enabled":            c.StartEnabled,
		"permission_poll_interval": c.PermissionPollInterval,
		"skip_unchanged":           c.SkipUnchanged,
		"log_level":                c.LogLevel,
		"log_file":                 c.LogFile,
		"display":                  c.Display,
		"xauthority":               c.XAuthority,
	}
}

func (s Source) String() string {
	if s.Kind == SourceFile {
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	}
	return string(s.Kind)
}
