package pkgconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Viper is a Config backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

var _ Config = (*Viper)(nil)

// NewViper reads the file at configFile and layers it as env over file over
// defaults. The format follows the file extension.
func NewViper(configFile string, opts ...Option) (*Viper, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	v := viper.New()
	for key, value := range o.defaults {
		v.SetDefault(key, value)
	}

	if o.envPrefix != "" {
		v.SetEnvPrefix(o.envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", configFile, err)
	}

	return &Viper{v: v}, nil
}

func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetDuration parses values such as "10s" or "1m".
func (vc *Viper) GetDuration(key string) time.Duration {
	return vc.v.GetDuration(key)
}

// Close is a no-op; the file is read once at startup.
func (vc *Viper) Close() error {
	return nil
}
