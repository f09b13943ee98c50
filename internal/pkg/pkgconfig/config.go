package pkgconfig

import "time"

// Config is the read-only view of application configuration.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetString(key string) string
	GetDuration(key string) time.Duration
	Close() error
}

// Option customizes how a Config implementation is built.
type Option func(*options)

type options struct {
	defaults  map[string]any
	envPrefix string
}

// WithDefaults sets fallback values used when a key is missing from both the
// file and the environment. Later calls override earlier ones key by key.
func WithDefaults(defaults map[string]any) Option {
	return func(o *options) {
		if o.defaults == nil {
			o.defaults = make(map[string]any, len(defaults))
		}
		for k, v := range defaults {
			o.defaults[k] = v
		}
	}
}

// WithEnvPrefix enables environment overrides. A key such as
// "server.address.http" is read from PREFIX_SERVER_ADDRESS_HTTP.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}
