package storage

import (
	"context"
	"errors"
	"time"
)

// SessionTTL is how long a session blob (cart or checkout state) lives
// without being written again.
const SessionTTL = 7 * 24 * time.Hour

// ErrNotFound is returned when a key is absent or expired.
var ErrNotFound = errors.New("storage: key not found")

// Store persists serialized session blobs keyed by string. The cart and
// checkout layers are decoupled from any specific storage medium; memory
// and redis implementations are provided.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}
