package pkguid

import "fmt"

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}

// Kind names a StringID strategy selectable from configuration.
type Kind string

const (
	KindUUID      Kind = "uuid"
	KindSnowflake Kind = "snowflake"
)

// NewStringID returns the generator for kind. An empty kind means UUID.
func NewStringID(kind Kind) (StringID, error) {
	switch kind {
	case "", KindUUID:
		return NewUUID(), nil
	case KindSnowflake:
		sf, err := NewSnowflake()
		if err != nil {
			return nil, err
		}
		return sf, nil
	default:
		return nil, fmt.Errorf("unknown id generator %q", kind)
	}
}
