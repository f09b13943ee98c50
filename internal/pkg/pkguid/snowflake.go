package pkguid

import (
	"crypto/rand"
	"math/big"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// snowflakeEpoch is 2025-12-01T00:00:00+07:00 in milliseconds.
const snowflakeEpoch = 1764522000000

var setEpoch sync.Once

// Snowflake issues short, time-sortable IDs in base32 form.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake picks a random node so that replicas rarely collide without
// any coordination.
func NewSnowflake() (*Snowflake, error) {
	setEpoch.Do(func() { snowflake.Epoch = snowflakeEpoch })

	n, err := rand.Int(rand.Reader, big.NewInt(1<<snowflake.NodeBits))
	if err != nil {
		return nil, err
	}

	node, err := snowflake.NewNode(n.Int64())
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

func (s *Snowflake) Generate() string {
	return s.node.Generate().Base32()
}
