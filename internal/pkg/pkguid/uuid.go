package pkguid

import "github.com/google/uuid"

// UUID issues version 7 UUIDs, which sort by creation time.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

// Generate falls back to a random v4 if the v7 clock read fails.
func (*UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
